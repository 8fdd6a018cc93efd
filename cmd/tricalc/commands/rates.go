package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"tricalc/internal/crypto"
)

func ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Fetch and print the currency rate table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := appCtx.Currency.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load rates: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "base\t%s\n", table.Base())
			fmt.Fprintf(tw, "fetched\t%s\n", table.FetchedAt().Format(time.RFC3339))
			fmt.Fprintf(tw, "digest\t%s\n", crypto.Digest(table))
			fmt.Fprintln(tw)
			for _, code := range table.Codes() {
				r, _ := table.Rate(code)
				fmt.Fprintf(tw, "%s\t%g\n", code, r)
			}
			return tw.Flush()
		},
	}
}
