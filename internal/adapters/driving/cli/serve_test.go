package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Use(t *testing.T) {
	assert.Equal(t, "serve", serveCmd.Use)
}

func TestServeCmd_PortFlag(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
	assert.Equal(t, "p", flag.Shorthand)
}
