package main

import (
	"strings"

	"github.com/mmrzaf/blockgenie/internal/domain"
	"github.com/mmrzaf/blockgenie/internal/generators"
	"github.com/mmrzaf/blockgenie/internal/render"
	"github.com/spf13/cobra"
)

var categoryParams = map[domain.Category][]string{
	domain.CategoryDateTime: {generators.ParamDateTimeRange, generators.ParamDateTimeFormat},
	domain.CategoryFloat:    {generators.ParamFloatRange},
	domain.CategoryInteger:  {generators.ParamIntRange},
	domain.CategoryName:     {generators.ParamNameType, generators.ParamFullName},
}

func categoriesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List column categories and their parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := render.Lookup(format)
			if err != nil {
				return err
			}
			var rows [][]any
			for _, c := range domain.Categories() {
				rows = append(rows, []any{string(c), strings.Join(categoryParams[c], ", ")})
			}
			return formatter.Format([]string{"category", "params"}, rows, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table|csv|json|yaml)")
	return cmd
}
