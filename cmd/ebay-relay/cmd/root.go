// Package cmd implements the CLI commands for ebay-relay.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/auctionsniper/ebay-relay/internal/config"
	"github.com/auctionsniper/ebay-relay/pkg/logger"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "ebay-relay",
	Short: "eBay OAuth relay and graded card search API",
	Long: "ebay-relay holds the eBay application credentials, runs the eBay\n" +
		"consent flow for signed-in users, and serves graded Pokémon card\n" +
		"searches against the Browse API.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config (skipped when missing)")

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(searchCommand())
	rootCmd.AddCommand(authURLCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the dotenv file and the YAML config and builds the
// process logger from it.
func loadConfig() (*config.Config, *slog.Logger, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}
