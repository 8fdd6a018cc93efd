package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tricalc/internal/domain"
	"tricalc/internal/engine/convert"
	"tricalc/internal/interpreter"
	"tricalc/internal/units"
)

var errConversionUnavailable = errors.New("conversion unavailable")

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value between two units or currencies",
		Example: `  tricalc convert 5 km mi
  tricalc convert 100 usd eur`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], err)
			}
			from, to := args[1], args[2]

			category := units.CategoryOf(from)
			if category == domain.CategoryCurrency {
				from, to = strings.ToUpper(from), strings.ToUpper(to)
			}
			if units.CategoryOf(to) != category {
				return fmt.Errorf("cannot convert %s to %s: different categories", from, to)
			}

			var table domain.RateTable
			if category == domain.CategoryCurrency {
				table, err = appCtx.Currency.Load(cmd.Context())
				if err != nil {
					return fmt.Errorf("load rates: %w", err)
				}
			}
			for _, u := range []string{from, to} {
				if !units.Has(category, u, table) {
					return fmt.Errorf("%w %q for %s", units.ErrUnknownUnit, u, category)
				}
			}

			result, ok := convert.Convert(category, from, to, value, table)
			if !ok {
				return fmt.Errorf("%w: %s %s to %s", errConversionUnavailable, args[0], from, to)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %.4f %s\n", interpreter.FormatNumber(value), from, result, to)
			return nil
		},
	}
}
