package triage

import (
	"slices"

	"github.com/rahulvramesh/filetriage/internal/types"
)

// Resolution is the effective decision for one file index
type Resolution struct {
	Index    int
	Decision types.Decision
}

// Statistics counts effective decisions over a session
type Statistics struct {
	Total     int
	Kept      int
	Trashed   int
	Undecided int
}

// Resolve collapses the history into one decision per index, the latest
// entry winning, ordered by index.
func (s *Session) Resolve() []Resolution {
	latest := make(map[int]types.Decision, len(s.history))
	for _, h := range s.history {
		latest[h.Index] = h.Decision
	}

	out := make([]Resolution, 0, len(latest))
	for idx, d := range latest {
		out = append(out, Resolution{Index: idx, Decision: d})
	}
	slices.SortFunc(out, func(a, b Resolution) int { return a.Index - b.Index })
	return out
}

// Decided reports whether idx has an effective decision and returns it.
func (s *Session) Decided(idx int) (types.Decision, bool) {
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].Index == idx {
			return s.history[i].Decision, true
		}
	}
	return types.Keep, false
}

// Stats summarises the effective decisions.
func (s *Session) Stats() Statistics {
	st := Statistics{Total: len(s.files)}
	for _, r := range s.Resolve() {
		switch r.Decision {
		case types.Keep:
			st.Kept++
		case types.Trash:
			st.Trashed++
		}
	}
	st.Undecided = max(st.Total-st.Kept-st.Trashed, 0)
	return st
}
