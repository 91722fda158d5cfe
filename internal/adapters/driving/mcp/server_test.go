package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("requires the answer service", func(t *testing.T) {
		_, err := NewServer(&Ports{})
		assert.ErrorIs(t, err, ErrMissingAnswerService)
	})

	t.Run("registers descriptors", func(t *testing.T) {
		server, err := NewServer(&Ports{Answer: &mockAnswerService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("construction is repeatable", func(t *testing.T) {
		// Descriptor registration must not mutate shared state: two
		// servers over the same ports both construct cleanly.
		ports := &Ports{Answer: &mockAnswerService{}}

		first, err := NewServer(ports)
		require.NoError(t, err)
		second, err := NewServer(ports)
		require.NoError(t, err)

		assert.NotNil(t, first)
		assert.NotNil(t, second)
	})
}
