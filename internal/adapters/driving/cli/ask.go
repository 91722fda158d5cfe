package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
)

var (
	askModel       string
	askMaxTokens   int
	askTemperature float64
	askSystem      string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask Perplexity AI a one-shot question",
	Long: `Sends a single question to Perplexity AI and prints the answer with
its citations. Useful for trying out the configuration without an MCP
client attached.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askModel, "model", "", "model to use (sonar, sonar-pro, sonar-reasoning)")
	askCmd.Flags().IntVar(&askMaxTokens, "max-tokens", 0, "maximum tokens in the response")
	askCmd.Flags().Float64Var(&askTemperature, "temperature", 0, "sampling temperature (0-2)")
	askCmd.Flags().StringVar(&askSystem, "system", "", "optional system message")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	req := domain.QueryRequest{
		Message:       args[0],
		Model:         askModel,
		MaxTokens:     askMaxTokens,
		Temperature:   askTemperature,
		SystemMessage: askSystem,
	}

	result, err := answerService.Query(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	cmd.Println(result.Render())
	return nil
}
