package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tricalc/internal/domain"
	"tricalc/internal/store"
)

func TestSettings_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var settings domain.SettingsStore = store.NewSettingsFileStore(home)

	want := domain.Settings{
		RatesURL: "http://127.0.0.1:8080/latest/USD",
		Mode:     "converter",
		Category: "weight",
		From:     "lb",
		To:       "kg",
		LogLevel: "info",
	}
	if err := settings.SaveSettings(want); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	got, found, err := settings.LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if !found {
		t.Fatal("settings file not found after save")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch after load (-want +got):\n%s", diff)
	}

	info, err := os.Stat(filepath.Join(home, store.SettingsFilename))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("mode = %o, want 600", perm)
	}
}

func TestSettings_MissingFileIsNotAnError(t *testing.T) {
	settings := store.NewSettingsFileStore(t.TempDir())

	got, found, err := settings.LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if found {
		t.Fatal("found settings in an empty directory")
	}
	if diff := cmp.Diff(domain.Settings{}, got); diff != "" {
		t.Fatalf("expected zero settings (-want +got):\n%s", diff)
	}
}

func TestSettings_MalformedFileFails(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, store.SettingsFilename), []byte("mode: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.NewSettingsFileStore(home).LoadSettings(); err == nil {
		t.Fatal("expected a YAML error")
	}
}
