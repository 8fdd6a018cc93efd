// Package tty answers whether a stream is attached to an interactive terminal.
package tty

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is a terminal, including Cygwin/MSYS ptys.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive reports whether r is an *os.File backed by a terminal.
// Buffers and pipes are never interactive.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && IsTerminal(f)
}
