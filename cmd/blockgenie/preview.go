package main

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/mmrzaf/blockgenie/internal/app"
	"github.com/mmrzaf/blockgenie/internal/config"
	"github.com/mmrzaf/blockgenie/internal/frame"
	"github.com/mmrzaf/blockgenie/internal/frame/arrowframe"
	"github.com/mmrzaf/blockgenie/internal/logging"
	"github.com/mmrzaf/blockgenie/internal/render"
	"github.com/spf13/cobra"
)

func previewCmd(cfg *config.Config, logLevel *string) *cobra.Command {
	var (
		flags      schemaFlags
		format     string
		showSchema bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Generate a dataframe and print it",
		Example: `  blockgenie preview -n 5 -c 'id:integer:int_range=1,1000' -c 'first:name:name_type=first'
  blockgenie preview -c 'ts:datetime:datetime_range=2024-01-01,2024-12-31;datetime_format=%Y-%m-%d' --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLoggerWithWriter(*logLevel, os.Stderr)
			defer logger.Sync()

			g, err := flags.genie(logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if showSchema {
				fmt.Fprintln(cmd.ErrOrStderr(), g.String())
			}

			if format == "arrow" {
				rec, err := app.BuildFrame[arrow.Record](g, arrowframe.NewBuilder(nil))
				if err != nil {
					return err
				}
				defer rec.Release()
				return arrowframe.WriteIPC(out, rec)
			}

			formatter, err := render.Lookup(format)
			if err != nil {
				return err
			}
			tbl, err := app.BuildFrame[*frame.Table](g, frame.TableBuilder{})
			if err != nil {
				return err
			}
			return formatter.Format(tbl.Columns(), tbl.Rows(), out)
		},
	}

	flags.bind(cmd, cfg)
	cmd.Flags().StringVarP(&format, "format", "f", cfg.Format, "Output format (table|csv|json|yaml|arrow)")
	cmd.Flags().BoolVar(&showSchema, "show-schema", false, "Print the schema summary to stderr")
	return cmd
}
