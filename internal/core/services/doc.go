// Package services contains the core business logic, orchestrating
// domain operations over the driven ports.
package services
