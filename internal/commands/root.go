package commands

import (
	"github.com/spf13/cobra"

	"github.com/mujtaba-kazmi2006/nunno-backend/internal/api"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nunno-backend",
	Short: "Nunno Finance API gateway",
	Long: `Backend gateway for the Nunno Finance assistant.

It aggregates market data into chart-ready price history, runs
technical, tokenomics and news-sentiment analysis, and orchestrates
the conversational assistant with tool access to those analyzers.`,
	Version: api.Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
