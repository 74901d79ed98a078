package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debug  bool
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio web site",
	Long: `portfolio serves the portfolio pages, the project catalog and the
contact form relay.

Configuration comes from the environment (SERVER_ADDR, PORTFOLIO_*).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debug || os.Getenv("PORTFOLIO_DEBUG") == "true" {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable development logging")
	rootCmd.AddCommand(serveCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
