package app

import (
	"context"

	"tricalc/internal/domain"
	"tricalc/internal/interpreter"
	"tricalc/internal/observability"
)

// App is the wired application shared by all commands.
type App struct {
	Config Config
	*Wire
}

// New builds the app from cfg.
func New(cfg Config) (*App, error) {
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Wire: w}, nil
}

// NewSession starts a calculator session in the configured mode and converter
// selection. Starting in currency conversion begins the rate load.
func (a *App) NewSession(ctx context.Context, opts ...interpreter.Option) *interpreter.Session {
	base := []interpreter.Option{
		interpreter.WithState(interpreter.NewState(domain.ModeStandard, a.Config.Selection)),
		interpreter.WithLogger(observability.WithFields("component", "session")),
	}
	s := interpreter.NewSession(a.Currency, append(base, opts...)...)
	s.Dispatch(ctx, domain.ModeChange{Mode: a.Config.Mode})
	return s
}

// SaveSettings persists the current configuration.
func (a *App) SaveSettings() error {
	return a.Settings.SaveSettings(a.Config.Settings())
}
