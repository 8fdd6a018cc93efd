package interpreter_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tricalc/internal/domain"
	"tricalc/internal/interpreter"
	"tricalc/internal/services/currency"
)

type fakeSource struct {
	release chan struct{}
	calls   atomic.Int32
	table   domain.RateTable
	err     error
}

func (f *fakeSource) FetchRates(ctx context.Context) (domain.RateTable, error) {
	f.calls.Add(1)
	<-f.release
	return f.table, f.err
}

func newFakeSource(err error) *fakeSource {
	return &fakeSource{
		release: make(chan struct{}),
		table:   domain.NewRateTable("USD", map[string]float64{"USD": 1, "EUR": 0.5, "GBP": 0.25}, time.Now()),
		err:     err,
	}
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// updates records snapshots delivered after background loads.
type updates struct {
	mu    sync.Mutex
	snaps []domain.DisplaySnapshot
}

func (u *updates) add(s domain.DisplaySnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.snaps = append(u.snaps, s)
}

func (u *updates) all() []domain.DisplaySnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]domain.DisplaySnapshot(nil), u.snaps...)
}

func dispatch(s *interpreter.Session, line string) domain.DisplaySnapshot {
	var snap domain.DisplaySnapshot
	for _, a := range keys(line) {
		snap = s.Dispatch(context.Background(), a)
	}
	return snap
}

func TestSession_StandardArithmetic(t *testing.T) {
	s := interpreter.NewSession(nil, interpreter.WithLogger(discard()))

	snap := dispatch(s, "12 + 30")
	if snap.Primary != "30" || snap.Secondary != "12 +" {
		t.Fatalf("pending snapshot = %+v", snap)
	}
	snap = dispatch(s, "=")
	if snap.Primary != "42" || snap.Secondary != "" {
		t.Fatalf("evaluated snapshot = %+v", snap)
	}
}

func TestSession_CurrencyRefreshAfterLoad(t *testing.T) {
	src := newFakeSource(nil)
	store := currency.New(src, discard())
	var got updates
	s := interpreter.NewSession(store,
		interpreter.WithLogger(discard()),
		interpreter.WithUpdates(got.add),
	)

	snap := dispatch(s, "mode:converter cat:currency 10")
	if snap.Primary != "10 USD" || snap.Secondary != "" {
		t.Fatalf("snapshot while pending = %+v", snap)
	}
	if st := store.Status(); st != domain.LoadPending {
		t.Fatalf("store status = %v, want pending", st)
	}

	close(src.release)
	s.Wait()

	want := domain.DisplaySnapshot{Primary: "10 USD", Secondary: "= 5.0000 EUR"}
	if snap := s.Snapshot(); snap != want {
		t.Fatalf("snapshot after load = %+v, want %+v", snap, want)
	}
	ups := got.all()
	if len(ups) != 1 || ups[0] != want {
		t.Fatalf("updates = %+v, want one %+v", ups, want)
	}

	// Loaded: further conversions are synchronous and do not fetch again.
	snap = dispatch(s, "units:USD:GBP cat:currency units:EUR:GBP")
	if snap.Secondary != "= 5.0000 GBP" {
		t.Fatalf("EUR->GBP snapshot = %+v", snap)
	}
	s.Wait()
	if n := src.calls.Load(); n != 1 {
		t.Fatalf("source called %d times, want 1", n)
	}
}

func TestSession_FailedLoadLeavesConversionUnavailable(t *testing.T) {
	src := newFakeSource(errors.New("offline"))
	store := currency.New(src, discard())
	var got updates
	s := interpreter.NewSession(store,
		interpreter.WithLogger(discard()),
		interpreter.WithUpdates(got.add),
	)

	dispatch(s, "mode:converter cat:currency 10")
	close(src.release)
	s.Wait()

	if snap := s.Snapshot(); snap.Secondary != "" {
		t.Fatalf("snapshot after failed load = %+v", snap)
	}
	if ups := got.all(); len(ups) != 0 {
		t.Fatalf("unexpected updates after failure: %+v", ups)
	}

	// No retry on later currency selections.
	dispatch(s, "cat:length cat:currency =")
	s.Wait()
	if n := src.calls.Load(); n != 1 {
		t.Fatalf("source called %d times, want 1", n)
	}
	if st := store.Status(); st != domain.LoadFailed {
		t.Fatalf("store status = %v, want failed", st)
	}
}

func TestSession_NoRateSource(t *testing.T) {
	s := interpreter.NewSession(nil, interpreter.WithLogger(discard()))

	snap := dispatch(s, "mode:converter cat:currency 10 =")
	s.Wait()
	if snap.Primary != "10 USD" || snap.Secondary != "" {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestSession_WithState(t *testing.T) {
	st := interpreter.NewState(domain.ModeConverter, domain.ConverterSelection{
		Category: domain.CategoryWeight, From: "lb", To: "kg",
	})
	s := interpreter.NewSession(nil, interpreter.WithState(st), interpreter.WithLogger(discard()))

	snap := dispatch(s, "2")
	if snap.Secondary != "= 0.9072 kg" {
		t.Fatalf("snapshot = %+v", snap)
	}
	if got := s.State().Converter.From; got != "lb" {
		t.Fatalf("from = %q, want lb", got)
	}
}

func TestSession_ConcurrentDispatch(t *testing.T) {
	s := interpreter.NewSession(nil, interpreter.WithLogger(discard()))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(context.Background(), domain.Digit{D: 1})
		}()
	}
	wg.Wait()

	if got := s.Snapshot().Primary; len(got) != 50 {
		t.Fatalf("primary has %d digits, want 50", len(got))
	}
}

// lateStore reports an empty table until EnsureLoaded is called, then
// reports it loaded, as when another session's fetch resolves mid-dispatch.
type lateStore struct {
	mu     sync.Mutex
	loaded bool
	table  domain.RateTable
}

func (l *lateStore) EnsureLoaded(context.Context) domain.LoadResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loaded = true
	return domain.LoadResult{Status: domain.LoadLoaded, Rates: l.table}
}

func (l *lateStore) Load(ctx context.Context) (domain.RateTable, error) {
	return l.EnsureLoaded(ctx).Rates, nil
}

func (l *lateStore) Rates() domain.RateTable {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.loaded {
		return domain.RateTable{}
	}
	return l.table
}

func (l *lateStore) Status() domain.LoadStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return domain.LoadLoaded
	}
	return domain.LoadPending
}

func TestSession_RefreshesWhenLoadResolvedDuringDispatch(t *testing.T) {
	store := &lateStore{table: domain.NewRateTable("USD", map[string]float64{"USD": 1, "CHF": 0.8}, time.Now())}
	st := interpreter.NewState(domain.ModeConverter, interpreter.DefaultSelection())
	st.CurrentInput = "10"
	s := interpreter.NewSession(store, interpreter.WithState(st), interpreter.WithLogger(discard()))

	snap := s.Dispatch(context.Background(), domain.SelectCategory{Category: domain.CategoryCurrency})

	want := domain.DisplaySnapshot{Primary: "10 CHF", Secondary: "= 12.5000 USD"}
	if snap != want {
		t.Fatalf("snapshot = %+v, want %+v", snap, want)
	}
	if got := s.Snapshot(); got != want {
		t.Fatalf("session snapshot = %+v, want %+v", got, want)
	}
}
