package interfaces

import (
	"context"

	domaintypes "tricalc/internal/domain/types"
)

// RateSource fetches a fresh exchange-rate table.
type RateSource interface {
	FetchRates(ctx context.Context) (domaintypes.RateTable, error)
}

// CurrencyStore caches the session's rate table, loading it at most once.
type CurrencyStore interface {
	EnsureLoaded(ctx context.Context) domaintypes.LoadResult
	Load(ctx context.Context) (domaintypes.RateTable, error)
	Rates() domaintypes.RateTable
	Status() domaintypes.LoadStatus
}
