package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"tricalc/internal/app"
	"tricalc/internal/observability"
)

var (
	home   string
	appCtx *app.App

	ratesURL     string
	ratesTimeout time.Duration
	mode         string
	logLevel     string
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tricalc",
		Short:         "Standard, scientific and unit/currency calculator",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				home = os.Getenv(app.EnvHome)
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".tricalc")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home, os.LookupEnv)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &cfg); err != nil {
				return err
			}
			if err := observability.SetLevel(cfg.LogLevel); err != nil {
				return err
			}

			appCtx, err = app.New(cfg)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd)
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.tricalc)")
	root.PersistentFlags().StringVar(&ratesURL, "rates-url", "", "currency rate endpoint; empty string disables currency")
	root.PersistentFlags().DurationVar(&ratesTimeout, "rates-timeout", 0, "HTTP timeout for the rate fetch (0 = none)")
	root.PersistentFlags().StringVar(&mode, "mode", "", "starting mode: standard, scientific or converter")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(replCmd(), evalCmd(), convertCmd(), ratesCmd(), unitsCmd(), configCmd())
	return root
}

// applyFlags overrides cfg with the flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *app.Config) error {
	flags := cmd.Flags()
	if flags.Changed("rates-url") {
		cfg.RatesURL = ratesURL
	}
	if flags.Changed("rates-timeout") {
		cfg.RatesTimeout = ratesTimeout
	}
	if flags.Changed("mode") {
		if err := cfg.SetMode(mode); err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return nil
}
