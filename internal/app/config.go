package app

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"tricalc/internal/domain"
	"tricalc/internal/interpreter"
	"tricalc/internal/rates"
	"tricalc/internal/store"
	"tricalc/internal/units"
)

// Environment variables read by ApplyEnv.
const (
	EnvHome         = "TRICALC_HOME"
	EnvRatesURL     = "TRICALC_RATES_URL"
	EnvRatesTimeout = "TRICALC_RATES_TIMEOUT"
	EnvMode         = "TRICALC_MODE"
	EnvLogLevel     = "TRICALC_LOG_LEVEL"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home         string        // config directory, e.g. $HOME/.tricalc
	RatesURL     string        // rate endpoint; empty disables currency conversion
	RatesTimeout time.Duration // zero means no client timeout
	HTTP         *http.Client  // optional; built from RatesTimeout when nil
	Mode         domain.Mode
	Selection    domain.ConverterSelection
	LogLevel     string
}

// DefaultConfig returns the built-in configuration rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		Home:      home,
		RatesURL:  rates.DefaultURL,
		Mode:      domain.ModeStandard,
		Selection: interpreter.DefaultSelection(),
		LogLevel:  "warn",
	}
}

// LoadConfig layers defaults, the settings file in home and the environment.
// lookup is usually os.LookupEnv.
func LoadConfig(home string, lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig(home)

	settings, found, err := store.NewSettingsFileStore(home).LoadSettings()
	if err != nil {
		return Config{}, fmt.Errorf("read settings: %w", err)
	}
	if found {
		if err := cfg.ApplySettings(settings); err != nil {
			return Config{}, fmt.Errorf("settings %s: %w", store.SettingsFilename, err)
		}
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplySettings overrides cfg with every non-empty field of s.
func (c *Config) ApplySettings(s domain.Settings) error {
	if s.RatesURL != "" {
		c.RatesURL = s.RatesURL
	}
	if s.RatesTimeout != "" {
		if err := c.SetRatesTimeout(s.RatesTimeout); err != nil {
			return err
		}
	}
	if s.Mode != "" {
		if err := c.SetMode(s.Mode); err != nil {
			return err
		}
	}
	if s.LogLevel != "" {
		c.LogLevel = s.LogLevel
	}
	if s.Category != "" || s.From != "" || s.To != "" {
		return c.SetSelection(s.Category, s.From, s.To)
	}
	return nil
}

// ApplyEnv overrides cfg from TRICALC_* variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvRatesURL); ok {
		c.RatesURL = v
	}
	if v, ok := lookup(EnvRatesTimeout); ok && v != "" {
		if err := c.SetRatesTimeout(v); err != nil {
			return fmt.Errorf("%s: %w", EnvRatesTimeout, err)
		}
	}
	if v, ok := lookup(EnvMode); ok && v != "" {
		if err := c.SetMode(v); err != nil {
			return fmt.Errorf("%s: %w", EnvMode, err)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// SetMode parses and applies a mode name.
func (c *Config) SetMode(name string) error {
	m, err := domain.ParseMode(name)
	if err != nil {
		return err
	}
	c.Mode = m
	return nil
}

// SetRatesTimeout parses a Go duration such as "5s".
func (c *Config) SetRatesTimeout(v string) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("negative timeout %s", v)
	}
	c.RatesTimeout = d
	return nil
}

// SetSelection applies a converter selection. An empty category keeps the
// current one; empty units fall back to the category's default pair. Currency
// codes are only upper-cased since the loaded table is not known yet.
func (c *Config) SetSelection(category, from, to string) error {
	sel := c.Selection
	if category != "" {
		cat, err := domain.ParseCategory(category)
		if err != nil {
			return err
		}
		if cat != sel.Category {
			sel.Category = cat
			sel.From, sel.To = units.DefaultPair(cat, domain.RateTable{})
		}
	}
	if sel.Category == domain.CategoryCurrency {
		from, to = strings.ToUpper(from), strings.ToUpper(to)
	}
	for _, u := range []*string{&from, &to} {
		if *u == "" {
			continue
		}
		if sel.Category != domain.CategoryCurrency && !units.Has(sel.Category, *u, domain.RateTable{}) {
			return fmt.Errorf("%w %q for %s", units.ErrUnknownUnit, *u, sel.Category)
		}
	}
	if from != "" {
		sel.From = from
	}
	if to != "" {
		sel.To = to
	}
	c.Selection = sel
	return nil
}

// Settings returns the persistable part of cfg.
func (c Config) Settings() domain.Settings {
	s := domain.Settings{
		RatesURL: c.RatesURL,
		Mode:     c.Mode.String(),
		Category: c.Selection.Category.String(),
		From:     c.Selection.From,
		To:       c.Selection.To,
		LogLevel: c.LogLevel,
	}
	if c.RatesTimeout > 0 {
		s.RatesTimeout = c.RatesTimeout.String()
	}
	return s
}
