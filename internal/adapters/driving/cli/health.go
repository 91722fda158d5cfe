package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check Perplexity API reachability",
	Long: `Issues a minimal test query to verify the API is reachable and the
configured credential is valid. Exits non-zero when the check fails.`,
	RunE: runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	if err := answerService.HealthCheck(cmd.Context()); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	cmd.Println("ok")
	return nil
}
