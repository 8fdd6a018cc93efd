package store

import (
	"path/filepath"
	"sync"

	"tricalc/internal/domain"
)

// SettingsFilename is the name of the settings file inside the home directory.
const SettingsFilename = "config.yaml"

// SettingsFileStore persists user preferences to disk.
type SettingsFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSettingsFileStore returns a SettingsFileStore rooted at dir.
func NewSettingsFileStore(dir string) *SettingsFileStore {
	return &SettingsFileStore{dir: dir}
}

// Path returns the settings file location.
func (s *SettingsFileStore) Path() string {
	return filepath.Join(s.dir, SettingsFilename)
}

// SaveSettings writes settings to disk.
func (s *SettingsFileStore) SaveSettings(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeYAML(s.Path(), settings, 0o600)
}

// LoadSettings reads settings and whether the file was present.
func (s *SettingsFileStore) LoadSettings() (domain.Settings, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var settings domain.Settings
	found, err := readYAML(s.Path(), &settings)
	if err != nil {
		return domain.Settings{}, false, err
	}
	return settings, found, nil
}

// Compile-time assertion that SettingsFileStore implements domain.SettingsStore.
var _ domain.SettingsStore = (*SettingsFileStore)(nil)
