package main

import (
	"fmt"
	"os"

	"github.com/mmrzaf/blockgenie/internal/config"
	"github.com/mmrzaf/blockgenie/internal/logging"
	"github.com/mmrzaf/blockgenie/internal/validation"
	"github.com/spf13/cobra"
)

func validateCmd(cfg *config.Config, logLevel *string) *cobra.Command {
	var (
		flags   schemaFlags
		sqlSafe bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate column definitions without generating data",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLoggerWithWriter(*logLevel, os.Stderr)
			defer logger.Sync()

			g, err := flags.genie(logger)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %v\n", err)
				return err
			}
			if sqlSafe {
				if err := validation.ValidateSQLColumns(g.Schema().Names()); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %v\n", err)
					return err
				}
			}
			hash, err := g.Fingerprint()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), g.String())
			fmt.Fprintf(cmd.OutOrStdout(), "Schema is valid (fingerprint %s)\n", hash[:12])
			return nil
		},
	}

	flags.bind(cmd, cfg)
	cmd.Flags().BoolVar(&sqlSafe, "sql", false, "Also require SQL-safe column names")
	return cmd
}
