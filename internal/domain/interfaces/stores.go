package interfaces

import domaintypes "tricalc/internal/domain/types"

// SettingsStore persists user preferences between runs.
type SettingsStore interface {
	SaveSettings(settings domaintypes.Settings) error
	LoadSettings() (domaintypes.Settings, bool, error)
}
