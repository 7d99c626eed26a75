package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rahulvramesh/filetriage/internal/executor"
	"github.com/rahulvramesh/filetriage/internal/triage"
	"github.com/rahulvramesh/filetriage/internal/types"
	"github.com/rahulvramesh/filetriage/internal/utils"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(10, min(msg.Width-10, 60))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.state {
		case stateTriage:
			return m.updateTriage(msg)
		case stateSummary:
			return m.updateSummary(msg)
		case stateDone:
			if msg.Type == tea.KeyEnter || key.Matches(msg, m.keys.Back) {
				return m, tea.Quit
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case types.DiscoveryCompleteMsg:
		m.session = triage.NewSession(msg.Files)
		m.state = stateTriage
		m.log.Info("triage started", "dir", msg.Dir, "files", len(msg.Files))
		return m, nil

	case types.ApplyCompleteMsg:
		report := msg.Report
		m.report = &report
		m.state = stateDone
		return m, nil

	case types.ErrMsg:
		m.err = msg
		m.log.Error("triage failed", "error", msg.Err)
		if m.state == stateLoading || m.state == stateApplying {
			m.state = stateDone
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateTriage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keep):
		m.decide(types.Keep)
	case key.Matches(msg, m.keys.Trash):
		m.decide(types.Trash)
	case key.Matches(msg, m.keys.Next):
		m.session.Advance()
		m.message = ""
	case key.Matches(msg, m.keys.Prev):
		m.session.Retreat()
		m.message = ""
	case key.Matches(msg, m.keys.Undo):
		entry, ok := m.session.Undo()
		if !ok {
			m.message = "Nothing to undo"
			break
		}
		m.moveTo(entry.Index)
		if f, ok := m.session.Current(); ok {
			m.message = fmt.Sprintf("Undid %s for %s", entry.Decision, f.Name)
		}
		m.log.Debug("undo", "index", entry.Index, "decision", entry.Decision.String())
	case key.Matches(msg, m.keys.Summary):
		m.state = stateSummary
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = stateTriage
		return m, nil
	case key.Matches(msg, m.keys.Apply):
		actions := executor.Plan(m.session.Files(), m.session.Resolve())
		if len(actions) == 0 || m.executor == nil {
			m.report = &types.ApplyReport{}
			m.state = stateDone
			return m, nil
		}
		m.state = stateApplying
		return m, tea.Batch(m.spinner.Tick, applyDecisions(m.executor, actions))
	}
	return m, nil
}

// decide records d for the current file and moves on. When the cursor cannot
// advance the list is exhausted and the summary is shown.
func (m *Model) decide(d types.Decision) {
	if m.session.State() == triage.Empty {
		return
	}
	f, _ := m.session.Current()
	m.session.RecordDecision(d)
	m.message = fmt.Sprintf("%s: %s", d, f.Name)
	m.log.Debug("decision", "index", m.session.Cursor(), "file", f.Path, "decision", d.String())

	before := m.session.Cursor()
	m.session.Advance()
	if m.session.Cursor() == before {
		m.state = stateSummary
	}
}

// moveTo walks the cursor to idx; the session only moves one step at a time.
func (m *Model) moveTo(idx int) {
	for m.session.Cursor() > idx {
		m.session.Retreat()
	}
	for m.session.Cursor() < idx {
		before := m.session.Cursor()
		m.session.Advance()
		if m.session.Cursor() == before {
			return
		}
	}
}

// decidedFraction is the share of files with an effective decision
func (m Model) decidedFraction() float64 {
	st := m.session.Stats()
	return utils.CalculateProgress(st.Kept+st.Trashed, st.Total)
}
