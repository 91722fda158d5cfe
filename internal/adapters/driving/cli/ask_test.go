package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_Executes(t *testing.T) {
	mock := &mockAnswerService{
		result: &domain.QueryResult{
			Text:      "Go 1.24.",
			Model:     domain.ModelSonar,
			Citations: []string{"https://go.dev"},
		},
	}

	withAnswerService(mock, func() {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetArgs([]string{"ask", "latest go release?", "--model", "sonar", "--max-tokens", "200"})
		defer func() {
			rootCmd.SetArgs(nil)
			askModel = ""
			askMaxTokens = 0
		}()

		err := rootCmd.Execute()

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Go 1.24.")
		assert.Contains(t, buf.String(), "https://go.dev")
		assert.Equal(t, "latest go release?", mock.lastReq.Message)
		assert.Equal(t, domain.ModelSonar, mock.lastReq.Model)
		assert.Equal(t, 200, mock.lastReq.MaxTokens)
	})
}

func TestAskCmd_QueryFailure(t *testing.T) {
	mock := &mockAnswerService{err: domain.ErrTimeout}

	withAnswerService(mock, func() {
		out := new(bytes.Buffer)
		errOut := new(bytes.Buffer)
		rootCmd.SetOut(out)
		rootCmd.SetErr(errOut)
		rootCmd.SetArgs([]string{"ask", "anything"})
		defer func() {
			rootCmd.SetArgs(nil)
		}()

		err := rootCmd.Execute()

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrTimeout)
	})
}
