package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tricalc/internal/domain"
	"tricalc/internal/units"
)

func unitsCmd() *cobra.Command {
	var fetch bool
	cmd := &cobra.Command{
		Use:   "units [CATEGORY]",
		Short: "List the units of each conversion category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := domain.Categories()
			if len(args) == 1 {
				c, err := domain.ParseCategory(args[0])
				if err != nil {
					return err
				}
				categories = []domain.ConversionCategory{c}
			}

			table := appCtx.Currency.Rates()
			if fetch {
				var err error
				if table, err = appCtx.Currency.Load(cmd.Context()); err != nil {
					return fmt.Errorf("load rates: %w", err)
				}
			}
			for _, c := range categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", c, strings.Join(units.Available(c, table), " "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fetch, "fetch", false, "load the rate table to list every currency code")
	return cmd
}
