package app_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tricalc/internal/app"
	"tricalc/internal/domain"
	"tricalc/internal/rates"
	"tricalc/internal/store"
	"tricalc/internal/units"
)

func env(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := app.LoadConfig(home, env(nil))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	want := domain.Settings{
		RatesURL: rates.DefaultURL,
		Mode:     "standard",
		Category: "length",
		From:     "m",
		To:       "km",
		LogLevel: "warn",
	}
	if diff := cmp.Diff(want, cfg.Settings()); diff != "" {
		t.Fatalf("default settings mismatch (-want +got):\n%s", diff)
	}
	if cfg.Home != home || cfg.RatesTimeout != 0 {
		t.Fatalf("home=%q timeout=%v", cfg.Home, cfg.RatesTimeout)
	}
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	home := t.TempDir()
	err := store.NewSettingsFileStore(home).SaveSettings(domain.Settings{
		RatesURL:     "http://file.example/latest/USD",
		RatesTimeout: "3s",
		Mode:         "converter",
		Category:     "weight",
		From:         "lb",
		LogLevel:     "info",
	})
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := app.LoadConfig(home, env(map[string]string{
		app.EnvRatesURL: "http://env.example/latest/EUR",
		app.EnvMode:     "Scientific",
	}))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.RatesURL != "http://env.example/latest/EUR" {
		t.Fatalf("rates url = %q, env should win", cfg.RatesURL)
	}
	if cfg.Mode != domain.ModeScientific {
		t.Fatalf("mode = %v, env should win", cfg.Mode)
	}
	if cfg.RatesTimeout != 3*time.Second {
		t.Fatalf("timeout = %v, want 3s from file", cfg.RatesTimeout)
	}
	want := domain.ConverterSelection{Category: domain.CategoryWeight, From: "lb", To: "g"}
	if diff := cmp.Diff(want, cfg.Selection); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
}

func TestLoadConfig_EmptyEnvURLDisablesRates(t *testing.T) {
	cfg, err := app.LoadConfig(t.TempDir(), env(map[string]string{app.EnvRatesURL: ""}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RatesURL != "" {
		t.Fatalf("rates url = %q, want empty", cfg.RatesURL)
	}
}

func TestLoadConfig_BadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"mode":    {app.EnvMode: "graphing"},
		"timeout": {app.EnvRatesTimeout: "soon"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := app.LoadConfig(t.TempDir(), env(kv)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestSetSelection(t *testing.T) {
	cfg := app.DefaultConfig(t.TempDir())

	if err := cfg.SetSelection("", "ft", ""); err != nil {
		t.Fatal(err)
	}
	if got := cfg.Selection; got.From != "ft" || got.To != "km" {
		t.Fatalf("selection = %+v", got)
	}

	if err := cfg.SetSelection("currency", "cad", "chf"); err != nil {
		t.Fatal(err)
	}
	want := domain.ConverterSelection{Category: domain.CategoryCurrency, From: "CAD", To: "CHF"}
	if diff := cmp.Diff(want, cfg.Selection); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}

	err := cfg.SetSelection("length", "kg", "")
	if !errors.Is(err, units.ErrUnknownUnit) {
		t.Fatalf("err = %v, want ErrUnknownUnit", err)
	}
	if cfg.Selection != want {
		t.Fatalf("failed SetSelection changed selection to %+v", cfg.Selection)
	}
}
