package interpreter

import (
	"fmt"

	"tricalc/internal/domain"
)

// Snapshot projects st onto the two display lines.
func Snapshot(st domain.SessionState) domain.DisplaySnapshot {
	if st.Mode == domain.ModeConverter {
		snap := domain.DisplaySnapshot{Primary: st.CurrentInput + " " + st.Converter.From}
		if st.HasResult {
			snap.Secondary = fmt.Sprintf("= %.4f %s", st.Result, st.Converter.To)
		}
		return snap
	}
	snap := domain.DisplaySnapshot{Primary: st.CurrentInput}
	if st.HasPending() {
		snap.Secondary = st.PreviousInput + " " + st.PendingOperator.Symbol()
	}
	return snap
}
