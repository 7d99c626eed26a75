// Package triage holds the triage state machine: a fixed ordered list of
// files, a cursor into it and a stack of recorded decisions.
//
// Navigation and decisions are independent. RecordDecision never moves the
// cursor and Undo never restores it; callers compose the two, for example
// RecordDecision followed by Advance. A caller detects the end of the list by
// observing that Advance left the cursor unchanged.
//
// A Session is not safe for concurrent use.
package triage

import (
	"slices"

	"github.com/rahulvramesh/filetriage/internal/types"
)

// State is the logical position of a session
type State int

const (
	Empty      State = iota // no files
	InProgress              // cursor before the last index
	AtEnd                   // cursor on the last index
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case AtEnd:
		return "at_end"
	default:
		return "in_progress"
	}
}

// Session is one triage run over a fixed file sequence.
type Session struct {
	files   []types.FileRecord
	cursor  int
	history []types.HistoryEntry
}

// NewSession starts a session with the cursor on the first file and no history.
// The slice is copied; an empty slice is valid.
func NewSession(files []types.FileRecord) *Session {
	return &Session{
		files:   slices.Clone(files),
		history: make([]types.HistoryEntry, 0, len(files)),
	}
}

// Advance moves to the next file, saturating at the last index.
func (s *Session) Advance() {
	if s.cursor < len(s.files)-1 {
		s.cursor++
	}
}

// Retreat moves to the previous file, saturating at 0.
func (s *Session) Retreat() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Current returns the file under the cursor, or false for an empty session.
func (s *Session) Current() (types.FileRecord, bool) {
	if len(s.files) == 0 {
		return types.FileRecord{}, false
	}
	return s.files[s.cursor], true
}

// RecordDecision pushes (cursor, d) onto the history.
func (s *Session) RecordDecision(d types.Decision) {
	s.history = append(s.history, types.HistoryEntry{Index: s.cursor, Decision: d})
}

// Undo pops the most recent decision, or returns false when there is none.
func (s *Session) Undo() (types.HistoryEntry, bool) {
	n := len(s.history)
	if n == 0 {
		return types.HistoryEntry{}, false
	}
	last := s.history[n-1]
	s.history = s.history[:n-1]
	return last, true
}

func (s *Session) Cursor() int { return s.cursor }

func (s *Session) Len() int { return len(s.files) }

// Files returns a copy of the session's file sequence.
func (s *Session) Files() []types.FileRecord { return slices.Clone(s.files) }

// History returns a copy of the decision stack, oldest first.
func (s *Session) History() []types.HistoryEntry { return slices.Clone(s.history) }

// State reports Empty, InProgress or AtEnd.
func (s *Session) State() State {
	switch {
	case len(s.files) == 0:
		return Empty
	case s.cursor == len(s.files)-1:
		return AtEnd
	default:
		return InProgress
	}
}
