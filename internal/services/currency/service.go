package currency

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"tricalc/internal/crypto"
	"tricalc/internal/domain"
	"tricalc/internal/observability"
)

var (
	// ErrNoSource is reported when the store was built without a rate source.
	ErrNoSource = errors.New("no rate source configured")
	// ErrEmptyTable is reported when the source returned no rates.
	ErrEmptyTable = errors.New("rate source returned an empty table")
)

// Service is a one-shot, cache-or-fetch rate table.
type Service struct {
	source domain.RateSource
	log    *slog.Logger

	mu     sync.Mutex
	status domain.LoadStatus
	rates  domain.RateTable
	err    error
	done   chan struct{}
}

// New returns a store backed by source. A nil source yields a store that is
// already failed.
func New(source domain.RateSource, log *slog.Logger) *Service {
	if log == nil {
		log = observability.Logger()
	}
	s := &Service{source: source, log: log, done: make(chan struct{})}
	if source == nil {
		s.status = domain.LoadFailed
		s.err = ErrNoSource
		close(s.done)
	}
	return s
}

// EnsureLoaded starts the fetch on first use and reports the current state
// without blocking. Once loaded it returns the table without any network call.
func (s *Service) EnsureLoaded(ctx context.Context) domain.LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == domain.LoadIdle {
		s.start(ctx)
	}
	return domain.LoadResult{Status: s.status, Rates: s.rates}
}

// Load starts or joins the fetch and waits until it resolves or ctx is done.
func (s *Service) Load(ctx context.Context) (domain.RateTable, error) {
	s.EnsureLoaded(ctx)

	select {
	case <-s.done:
	case <-ctx.Done():
		return domain.RateTable{}, ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == domain.LoadFailed {
		return domain.RateTable{}, s.err
	}
	return s.rates, nil
}

// Rates returns the loaded table, or an empty one.
func (s *Service) Rates() domain.RateTable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rates
}

// Status returns the load state.
func (s *Service) Status() domain.LoadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns why the load failed, if it did.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// start must be called with s.mu held.
func (s *Service) start(ctx context.Context) {
	s.status = domain.LoadPending
	// The fetch outlives the action that triggered it.
	ctx = context.WithoutCancel(ctx)

	go func() {
		s.log.Info("fetching currency rates")
		table, err := s.source.FetchRates(ctx)
		if err == nil && table.Empty() {
			err = ErrEmptyTable
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.status = domain.LoadFailed
			s.err = err
			s.log.Warn("failed to fetch currency rates", "err", err)
		} else {
			s.status = domain.LoadLoaded
			s.rates = table
			s.log.Info("currency rates fetched",
				"base", table.Base(),
				"codes", table.Len(),
				"digest", crypto.Digest(table),
			)
		}
		close(s.done)
	}()
}

// Compile-time assertion that Service implements domain.CurrencyStore.
var _ domain.CurrencyStore = (*Service)(nil)
