package interpreter

import (
	"context"
	"log/slog"
	"sync"

	"tricalc/internal/domain"
	"tricalc/internal/observability"
)

// Session is the single actor that owns one SessionState.
//
// Dispatch is safe for concurrent use; actions are applied one at a time.
type Session struct {
	mu      sync.Mutex
	state   domain.SessionState
	waiting bool

	currency domain.CurrencyStore
	onUpdate func(domain.DisplaySnapshot)
	log      *slog.Logger
	wg       sync.WaitGroup
}

// Option configures a Session.
type Option func(*Session)

// WithState starts the session from st instead of a cleared standard state.
func WithState(st domain.SessionState) Option {
	return func(s *Session) { s.state = st }
}

// WithUpdates registers fn to receive snapshots produced outside Dispatch,
// i.e. after a background rate load resolves.
func WithUpdates(fn func(domain.DisplaySnapshot)) Option {
	return func(s *Session) { s.onUpdate = fn }
}

// WithLogger overrides the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession returns a session that reads currency rates from store, which
// may be nil when no rate source is configured.
func NewSession(store domain.CurrencyStore, opts ...Option) *Session {
	s := &Session{
		state:    NewState(domain.ModeStandard, DefaultSelection()),
		currency: store,
		log:      observability.Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies action and returns the resulting snapshot.
func (s *Session) Dispatch(ctx context.Context, action domain.Action) domain.DisplaySnapshot {
	s.mu.Lock()
	rates := s.rates()
	next, effect := Reduce(s.state, action, rates)
	s.state = next
	snap := Snapshot(next)
	s.mu.Unlock()

	// The table may have arrived after this reduction read it.
	if effect == domain.EffectLoadRates && s.loadRates(ctx) && rates.Empty() {
		return s.Dispatch(ctx, domain.Refresh{})
	}
	return snap
}

// State returns a copy of the current state.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns the current display.
func (s *Session) Snapshot() domain.DisplaySnapshot {
	return Snapshot(s.State())
}

// Wait blocks until a background rate load started by this session has
// resolved and its refresh has been applied.
func (s *Session) Wait() { s.wg.Wait() }

func (s *Session) rates() domain.RateTable {
	if s.currency == nil {
		return domain.RateTable{}
	}
	return s.currency.Rates()
}

// loadRates starts or joins the rate load and reports whether the table is
// already loaded.
func (s *Session) loadRates(ctx context.Context) bool {
	if s.currency == nil {
		s.log.Debug("currency conversion unavailable: no rate source")
		return false
	}
	res := s.currency.EnsureLoaded(ctx)
	if res.Status != domain.LoadPending {
		s.log.Debug("rate load not pending", "status", res.Status.String())
		return res.Status == domain.LoadLoaded
	}

	s.mu.Lock()
	if s.waiting {
		s.mu.Unlock()
		return false
	}
	s.waiting = true
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		_, err := s.currency.Load(context.WithoutCancel(ctx))

		s.mu.Lock()
		s.waiting = false
		s.mu.Unlock()
		if err != nil {
			return
		}
		snap := s.Dispatch(ctx, domain.Refresh{})
		if s.onUpdate != nil {
			s.onUpdate(snap)
		}
	}()
	return false
}
