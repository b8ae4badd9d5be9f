package main

import (
	"os"

	"github.com/mmrzaf/blockgenie/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd(cfg *config.Config) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "blockgenie",
		Short:        "Generate dummy dataframes from a column schema",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")

	root.AddCommand(previewCmd(cfg, &logLevel))
	root.AddCommand(queryCmd(cfg, &logLevel))
	root.AddCommand(validateCmd(cfg, &logLevel))
	root.AddCommand(categoriesCmd())
	return root
}
