package app_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"tricalc/internal/app"
	"tricalc/internal/domain"
	"tricalc/internal/rates"
)

func TestApp_SessionStartsInConfiguredMode(t *testing.T) {
	table := domain.NewRateTable("USD", map[string]float64{"USD": 1, "EUR": 0.5}, time.Now())
	srv := httptest.NewServer(rates.NewServer(table, nil))
	defer srv.Close()

	cfg := app.DefaultConfig(t.TempDir())
	cfg.RatesURL = srv.URL + "/latest/USD"
	cfg.Mode = domain.ModeConverter
	if err := cfg.SetSelection("currency", "USD", "EUR"); err != nil {
		t.Fatal(err)
	}

	a, err := app.New(cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	s := a.NewSession(context.Background())
	s.Wait()

	if st := a.Currency.Status(); st != domain.LoadLoaded {
		t.Fatalf("currency status = %v, want loaded", st)
	}
	for _, d := range []byte{4, 2} {
		s.Dispatch(context.Background(), domain.Digit{D: d})
	}
	want := domain.DisplaySnapshot{Primary: "42 USD", Secondary: "= 21.0000 EUR"}
	if got := s.Snapshot(); got != want {
		t.Fatalf("snapshot = %+v, want %+v", got, want)
	}
}

func TestApp_NoRatesURL(t *testing.T) {
	cfg := app.DefaultConfig(t.TempDir())
	cfg.RatesURL = ""

	a, err := app.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Rates != nil {
		t.Fatal("rate source built without a URL")
	}
	if st := a.Currency.Status(); st != domain.LoadFailed {
		t.Fatalf("currency status = %v, want failed", st)
	}
}

func TestApp_SaveSettingsRoundTrip(t *testing.T) {
	home := t.TempDir()
	cfg := app.DefaultConfig(home)
	cfg.Mode = domain.ModeScientific
	cfg.RatesTimeout = 2 * time.Second

	a, err := app.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.SaveSettings(); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := app.LoadConfig(home, env(nil))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Mode != domain.ModeScientific || got.RatesTimeout != 2*time.Second {
		t.Fatalf("reloaded mode=%v timeout=%v", got.Mode, got.RatesTimeout)
	}
}
