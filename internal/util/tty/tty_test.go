package tty_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"tricalc/internal/util/tty"
)

func TestIsInteractive_NonFiles(t *testing.T) {
	if tty.IsInteractive(&bytes.Buffer{}) {
		t.Fatal("a buffer reported as a terminal")
	}
	if tty.IsInteractive(nil) {
		t.Fatal("nil reader reported as a terminal")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if tty.IsTerminal(f) {
		t.Fatal("a regular file reported as a terminal")
	}
	if tty.IsTerminal(nil) {
		t.Fatal("nil file reported as a terminal")
	}
}
