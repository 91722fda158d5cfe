// Package cli implements the cobra command surface for perplexity-mcp.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/perplexity-mcp/internal/adapters/driven/config"
	"github.com/custodia-labs/perplexity-mcp/internal/adapters/driven/perplexity"
	"github.com/custodia-labs/perplexity-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/perplexity-mcp/internal/core/services"
	"github.com/custodia-labs/perplexity-mcp/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag  bool
	configFile   string
	settingsFile string
)

// answerService is wired by initServices before any command runs.
// Tests inject their own implementation to skip config resolution.
var answerService driving.AnswerService

var rootCmd = &cobra.Command{
	Use:   "perplexity-mcp",
	Short: "MCP server bridging AI assistants to Perplexity AI web search",
	Long: `perplexity-mcp exposes Perplexity AI's real-time web search to any
MCP-compatible client (Claude Desktop, Cline, ...) over stdio or HTTP.

The Perplexity API key is resolved from the PERPLEXITY_API_KEY
environment variable, or from a config.txt file containing either a
PERPLEXITY_API_KEY=... line or the bare key.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultConfigFile, "path to the credential file")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", config.DefaultSettingsFile, "path to the optional settings file")
}

// initServices resolves the configuration and constructs the client
// and answer service. A missing credential aborts before any command
// body runs, with a non-zero exit.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	// version and help work without a credential
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	// already wired (tests inject a mock)
	if answerService != nil {
		return nil
	}

	cfg, err := config.Resolve(configFile, settingsFile)
	if err != nil {
		return err
	}

	client, err := perplexity.NewClient(cfg)
	if err != nil {
		return err
	}

	answerService = services.NewAnswerService(cfg, client)
	return nil
}

// Execute runs the root command. It installs signal handling so a
// termination signal shuts the server down gracefully, and exits
// non-zero on any error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
