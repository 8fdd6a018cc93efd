package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tricalc/internal/crypto"
	"tricalc/internal/observability"
	"tricalc/internal/rates"
	"tricalc/internal/services/currency"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr      string
		ratesFile string
		upstream  string
		timeout   time.Duration
		logLevel  string
	)
	cmd := &cobra.Command{
		Use:          "ratesrv",
		Short:        "Serve a currency rate table over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := observability.SetLevel(logLevel); err != nil {
				return err
			}
			log := observability.WithFields("component", "ratesrv")

			var handler http.Handler
			switch {
			case upstream != "" && ratesFile != "":
				return errors.New("--upstream and --rates-file are mutually exclusive")
			case upstream != "":
				client := &http.Client{Timeout: timeout}
				store := currency.New(rates.NewHTTP(upstream, client), log)
				handler = rates.NewProxyServer(store, log)
				log.Info("proxying rates", "upstream", upstream)
			default:
				table := rates.SampleTable()
				if ratesFile != "" {
					var err error
					if table, err = rates.LoadFile(ratesFile); err != nil {
						return err
					}
				}
				handler = rates.NewServer(table, log)
				log.Info("serving fixed rates",
					"base", table.Base(),
					"codes", table.Len(),
					"digest", crypto.Digest(table),
				)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, addr, handler, log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&ratesFile, "rates-file", "", "JSON rate payload to serve instead of the built-in sample")
	cmd.Flags().StringVar(&upstream, "upstream", "", "rate API to fetch once and cache, e.g. "+rates.DefaultURL)
	cmd.Flags().DurationVar(&timeout, "upstream-timeout", 10*time.Second, "HTTP timeout for the upstream fetch (0 = none)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	return cmd
}

func serve(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Info("rate server listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
