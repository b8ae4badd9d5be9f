package main

import (
	"errors"
	"os"
	"strings"

	"github.com/mmrzaf/blockgenie/internal/app"
	"github.com/mmrzaf/blockgenie/internal/config"
	"github.com/mmrzaf/blockgenie/internal/frame/sqlframe"
	"github.com/mmrzaf/blockgenie/internal/logging"
	"github.com/mmrzaf/blockgenie/internal/render"
	"github.com/spf13/cobra"
)

func queryCmd(cfg *config.Config, logLevel *string) *cobra.Command {
	var (
		flags    schemaFlags
		query    string
		driver   string
		dsn      string
		database string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Load a generated dataframe into SQL and query it",
		Example: `  blockgenie query -n 1000 -c 'age:integer:int_range=18,90' \
    --sql 'SELECT age / 10 * 10 AS decade, COUNT(*) FROM {{frame}} GROUP BY 1 ORDER BY 1'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return errors.New("--sql is required")
			}
			logger := logging.NewLoggerWithWriter(*logLevel, os.Stderr)
			defer logger.Sync()

			formatter, err := render.Lookup(format)
			if err != nil {
				return err
			}
			g, err := flags.genie(logger)
			if err != nil {
				return err
			}

			var opts []sqlframe.Option
			if database != "" {
				opts = append(opts, sqlframe.WithDatabase(database))
			}
			builder, err := sqlframe.NewBuilder(driver, dsn, logger, opts...)
			if err != nil {
				return err
			}
			f, err := app.BuildFrame[*sqlframe.Frame](g, builder)
			if err != nil {
				return err
			}
			defer f.Close()

			ctx := cmd.Context()
			if version, err := f.ServerVersion(ctx); err == nil {
				logger.Debugw("sql.server", map[string]any{"driver": f.Driver(), "version": version})
			}

			res, err := f.Query(ctx, query)
			if err != nil {
				return err
			}
			return formatter.Format(res.Columns, res.Rows, cmd.OutOrStdout())
		},
	}

	flags.bind(cmd, cfg)
	cmd.Flags().StringVar(&query, "sql", "", "Query to run; "+sqlframe.TablePlaceholder+" names the generated table")
	cmd.Flags().StringVar(&driver, "driver", cfg.SQLDriver, "SQL driver ("+strings.Join(sqlframe.Drivers(), "|")+")")
	cmd.Flags().StringVar(&dsn, "dsn", cfg.SQLDSN, "SQL data source name")
	cmd.Flags().StringVar(&database, "database", cfg.SQLDatabase, "Override the PostgreSQL database in --dsn")
	cmd.Flags().StringVarP(&format, "format", "f", cfg.Format, "Output format (table|csv|json|yaml)")
	return cmd
}
