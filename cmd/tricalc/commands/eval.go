package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tricalc/internal/interpreter"
)

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval TOKEN...",
		Short: "Feed tokens to a fresh session and print the display",
		Example: `  tricalc eval 3 + 4 x 2 =
  tricalc eval mode:scientific 2 ^ 10 =
  tricalc eval mode:converter cat:currency units:USD:EUR 100`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := interpreter.ParseActions(strings.Join(args, " "))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			session := appCtx.NewSession(ctx)
			session.Wait()
			for _, a := range actions {
				session.Dispatch(ctx, a)
				// Let a rate load finish before the next token picks units.
				session.Wait()
			}
			writeSnapshot(cmd.OutOrStdout(), session.Snapshot())
			return nil
		},
	}
}
