package app

import (
	"net/http"

	"tricalc/internal/domain"
	"tricalc/internal/observability"
	"tricalc/internal/rates"
	"tricalc/internal/services/currency"
	"tricalc/internal/store"
)

// Wire bundles the stores, services and clients for the CLI.
type Wire struct {
	Settings domain.SettingsStore
	Rates    domain.RateSource // nil when no rate URL is configured
	Currency *currency.Service
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	settingsStore := store.NewSettingsFileStore(cfg.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
		if cfg.RatesTimeout > 0 {
			httpClient = &http.Client{Timeout: cfg.RatesTimeout}
		}
	}

	var src domain.RateSource
	if cfg.RatesURL != "" {
		src = rates.NewHTTP(cfg.RatesURL, httpClient)
	}

	return &Wire{
		Settings: settingsStore,
		Rates:    src,
		Currency: currency.New(src, observability.WithFields("component", "currency")),
		HTTP:     httpClient,
	}, nil
}
