package commands

import (
	"fmt"
	"io"
	"sync"

	"tricalc/internal/domain"
)

// display serialises writes from the command loop and from background rate
// loads onto one writer.
type display struct {
	mu     sync.Mutex
	w      io.Writer
	prompt string
}

func newDisplay(w io.Writer, prompt string) *display {
	return &display{w: w, prompt: prompt}
}

// render prints the secondary line (when set) and then the primary line.
func (d *display) render(snap domain.DisplaySnapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	writeSnapshot(d.w, snap)
}

// update renders a snapshot produced while the user may be typing.
func (d *display) update(snap domain.DisplaySnapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.prompt != "" {
		fmt.Fprintln(d.w)
	}
	writeSnapshot(d.w, snap)
	fmt.Fprint(d.w, d.prompt)
}

func (d *display) printf(format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, format, args...)
}

func (d *display) showPrompt() {
	if d.prompt == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprint(d.w, d.prompt)
}

func writeSnapshot(w io.Writer, snap domain.DisplaySnapshot) {
	if snap.Secondary != "" {
		fmt.Fprintf(w, "  %s\n", snap.Secondary)
	}
	fmt.Fprintln(w, snap.Primary)
}
