package main

import (
	"errors"
	"fmt"

	"github.com/mmrzaf/blockgenie/internal/app"
	"github.com/mmrzaf/blockgenie/internal/columnflag"
	"github.com/mmrzaf/blockgenie/internal/config"
	"github.com/mmrzaf/blockgenie/internal/domain"
	"github.com/mmrzaf/blockgenie/internal/generators"
	"github.com/mmrzaf/blockgenie/internal/logging"
	"github.com/mmrzaf/blockgenie/internal/validation"
	"github.com/spf13/cobra"
)

// schemaFlags are the generation flags shared by preview, query and validate.
type schemaFlags struct {
	columns []string
	rows    int
	mode    string
	seed    int64
	hasSeed bool
	names   string
}

func (f *schemaFlags) bind(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringArrayVarP(&f.columns, "column", "c", nil, "Column definition name:category[:key=value;...] (repeatable)")
	cmd.Flags().IntVarP(&f.rows, "rows", "n", cfg.Rows, "Number of rows")
	cmd.Flags().StringVar(&f.mode, "mode", cfg.Mode, "Assembly mode (row|column)")
	cmd.Flags().StringVar(&f.names, "names", "faker", "Name source (faker|list)")

	var seedDefault int64
	if cfg.Seed != nil {
		seedDefault = *cfg.Seed
	}
	cmd.Flags().Int64VarP(&f.seed, "seed", "s", seedDefault, "Seed for reproducible output")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		f.hasSeed = cfg.Seed != nil || cmd.Flags().Changed("seed")
	}
}

func (f *schemaFlags) genie(logger *logging.Logger) (*app.Genie, error) {
	if len(f.columns) == 0 {
		return nil, errors.New("at least one --column is required")
	}
	cols, err := columnflag.ParseAll(f.columns)
	if err != nil {
		return nil, err
	}
	mode, err := domain.ParseMode(f.mode)
	if err != nil {
		return nil, err
	}

	var genOpts []generators.Option
	if f.hasSeed {
		genOpts = append(genOpts, generators.WithSeed(f.seed))
	}
	switch f.names {
	case "faker", "":
	case "list":
		genOpts = append(genOpts, generators.WithNameProvider(generators.ListNames{}))
	default:
		return nil, fmt.Errorf("unknown name source: %s", f.names)
	}

	g, err := app.NewGenie(f.rows, logger,
		app.WithGenerator(generators.New(genOpts...)),
		app.WithMode(mode),
	)
	if err != nil {
		return nil, err
	}
	g.AddColumns(cols...)

	if err := validation.ValidateSchema(g.Schema()); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	return g, nil
}
