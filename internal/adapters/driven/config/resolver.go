// Package config resolves the immutable runtime configuration for the
// Perplexity MCP bridge from layered sources at startup.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
	"github.com/custodia-labs/perplexity-mcp/internal/logger"
)

// EnvAPIKey is the environment variable carrying the credential.
// It takes priority over the config file.
const EnvAPIKey = "PERPLEXITY_API_KEY"

// Default file locations, relative to the working directory the server
// is launched from.
const (
	DefaultConfigFile   = "config.txt"
	DefaultSettingsFile = "settings.toml"
)

// Default query parameters, overridable via the settings file.
const (
	DefaultModel       = domain.ModelSonar
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
)

// ErrMissingAPIKey is returned when no source yields a credential.
var ErrMissingAPIKey = errors.New("config: missing credential: set " + EnvAPIKey + " or create " + DefaultConfigFile)

// Resolve builds the runtime configuration. The credential is resolved
// in order: the PERPLEXITY_API_KEY environment variable, a KEY=value
// line in configFile, the whole trimmed contents of configFile.
// Defaults for model, max tokens, and temperature come from constants,
// overridable by an optional TOML settings file. Resolution fails when
// no source yields a non-empty credential.
func Resolve(configFile, settingsFile string) (domain.Config, error) {
	key, err := resolveAPIKey(configFile)
	if err != nil {
		return domain.Config{}, err
	}

	cfg := domain.Config{
		APIKey:      key,
		BaseURL:     "https://api.perplexity.ai",
		Model:       DefaultModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}

	if err := applySettings(&cfg, settingsFile); err != nil {
		return domain.Config{}, err
	}

	return cfg, nil
}

// resolveAPIKey resolves the credential, first match wins.
func resolveAPIKey(path string) (string, error) {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		logger.Debug("Credential resolved from %s", EnvAPIKey)
		return key, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", ErrMissingAPIKey
	}

	key := keyFromFile(string(data))
	if key == "" {
		return "", ErrMissingAPIKey
	}
	logger.Debug("Credential resolved from %s", path)
	return key, nil
}

// keyFromFile extracts the credential from the config file contents.
// A file containing KEY=value lines is scanned for the first line
// naming the credential; a file with no "=" at all is treated as the
// bare credential.
func keyFromFile(content string) string {
	content = strings.TrimSpace(content)
	if !strings.Contains(content, "=") {
		return content
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, EnvAPIKey) {
			continue
		}
		if _, value, ok := strings.Cut(line, "="); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
