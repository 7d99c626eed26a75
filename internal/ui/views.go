package ui

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rahulvramesh/filetriage/internal/executor"
	"github.com/rahulvramesh/filetriage/internal/types"
	"github.com/rahulvramesh/filetriage/internal/utils"
)

// maxListed caps how many pending trash entries the summary prints
const maxListed = 10

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	header := TitleStyle.Render("🗂  File Triage")
	s.WriteString("\n")
	s.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header))
	s.WriteString("\n\n")

	var content string
	switch m.state {
	case stateLoading:
		content = m.renderLoading()
	case stateTriage:
		content = m.renderTriage()
	case stateSummary:
		content = m.renderSummary()
	case stateApplying:
		content = m.renderApplying()
	case stateDone:
		content = m.renderDone()
	}

	s.WriteString(lipgloss.NewStyle().Padding(0, 3).Render(content))

	if m.err != nil {
		s.WriteString("\n\n")
		errMsg := ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
		s.WriteString(lipgloss.NewStyle().Padding(0, 3).Render(errMsg))
	}

	s.WriteString("\n\n")
	return s.String()
}

func (m Model) renderLoading() string {
	return "  " + m.spinner.View() + " Scanning " + m.dir + "..."
}

func (m Model) renderTriage() string {
	var s strings.Builder

	f, ok := m.session.Current()
	if !ok {
		s.WriteString(WarningStyle.Render("No files to triage in " + m.dir))
		s.WriteString("\n\n")
		s.WriteString(DimStyle.Render("Press q to quit"))
		return s.String()
	}

	s.WriteString(DimStyle.Render(fmt.Sprintf("File %d of %d", m.session.Cursor()+1, m.session.Len())))
	s.WriteString("\n\n")

	name := HeaderStyle.Render(f.Name)
	if d, decided := m.session.Decided(m.session.Cursor()); decided {
		name += "  " + decisionBadge(d)
	}
	s.WriteString(name)
	s.WriteString("\n")
	s.WriteString(DimStyle.Render(utils.TruncatePath(f.Path, max(20, m.width-10))))
	s.WriteString("\n\n")

	rows := [][2]string{
		{"Type", CategoryStyle(f.Category).Render(f.Category.String())},
		{"Size", utils.FormatFileSize(f.Size)},
		{"Modified", fmt.Sprintf("%s (%s)", f.ModifiedAt.Local().Format("2006-01-02 15:04"), utils.FormatModified(f.ModifiedAt))},
	}
	for _, r := range rows {
		s.WriteString("  " + LabelStyle.Render(r[0]) + r[1] + "\n")
	}
	s.WriteString("\n")

	st := m.session.Stats()
	s.WriteString(m.progress.ViewAs(m.decidedFraction()))
	s.WriteString("  ")
	s.WriteString(DimStyle.Render(fmt.Sprintf("%d kept · %d trashed · %d left", st.Kept, st.Trashed, st.Undecided)))
	s.WriteString("\n\n")

	if m.message != "" {
		s.WriteString(m.message)
		s.WriteString("\n\n")
	}

	s.WriteString(m.help.View(m.keys))
	return s.String()
}

func (m Model) renderSummary() string {
	var s strings.Builder

	s.WriteString(HeaderStyle.Render("Summary"))
	s.WriteString("\n\n")

	st := m.session.Stats()
	fmt.Fprintf(&s, "  Files:     %d\n", st.Total)
	fmt.Fprintf(&s, "  %s %d\n", KeepStyle.Render("Keep:     "), st.Kept)
	fmt.Fprintf(&s, "  %s %d\n", TrashStyle.Render("Trash:    "), st.Trashed)
	fmt.Fprintf(&s, "  Undecided: %d\n\n", st.Undecided)

	actions := executor.Plan(m.session.Files(), m.session.Resolve())
	var total uint64
	for i, a := range actions {
		total += a.File.Size
		if i < maxListed {
			s.WriteString("   " + TrashStyle.Render("✗ ") + a.File.Name + DimStyle.Render(" "+utils.FormatFileSize(a.File.Size)) + "\n")
		}
	}
	if len(actions) > maxListed {
		s.WriteString(DimStyle.Render(fmt.Sprintf("   ... and %d more", len(actions)-maxListed)) + "\n")
	}
	if len(actions) > 0 {
		fmt.Fprintf(&s, "\n  %s to reclaim\n", utils.FormatFileSize(total))
	}
	s.WriteString("\n")

	s.WriteString(DimStyle.Render(m.applyHint(len(actions))))
	return s.String()
}

func (m Model) applyHint(pending int) string {
	if pending == 0 {
		return "Nothing marked for trash. y to finish, esc to go back, q to quit"
	}
	verb := "move to trash"
	if m.executor != nil {
		if m.executor.Mode() == executor.ModeDelete {
			verb = "delete"
		} else {
			verb = "move to " + utils.TruncatePath(m.executor.TrashDir(), 40)
		}
	}
	if m.executor != nil && m.executor.DryRun() {
		verb += " (dry run)"
	}
	return fmt.Sprintf("y to %s %d file(s), esc to keep triaging, q to quit without changes", verb, pending)
}

func (m Model) renderApplying() string {
	return "  " + m.spinner.View() + " Applying decisions..."
}

func (m Model) renderDone() string {
	var s strings.Builder

	if m.report == nil {
		s.WriteString(DimStyle.Render("Press q to quit"))
		return s.String()
	}

	r := m.report
	s.WriteString(SuccessStyle.Render("Done"))
	s.WriteString("\n\n")

	if r.DryRun {
		fmt.Fprintf(&s, "  Dry run: %d file(s) would be trashed\n", len(r.Skipped))
	}
	if len(r.Moved) > 0 {
		fmt.Fprintf(&s, "  Moved %d file(s) to trash\n", len(r.Moved))
	}
	if len(r.Deleted) > 0 {
		fmt.Fprintf(&s, "  Deleted %d file(s)\n", len(r.Deleted))
	}
	if r.Freed > 0 {
		fmt.Fprintf(&s, "  Reclaimed %s\n", utils.FormatFileSize(r.Freed))
	}
	for _, path := range slices.Sorted(maps.Keys(r.Failed)) {
		s.WriteString("  " + ErrorStyle.Render(fmt.Sprintf("✗ %s: %v", filepath.Base(path), r.Failed[path])) + "\n")
	}

	s.WriteString("\n")
	s.WriteString(DimStyle.Render("Press q or enter to exit"))
	return s.String()
}

func decisionBadge(d types.Decision) string {
	if d == types.Trash {
		return TrashStyle.Render("[TRASH]")
	}
	return KeepStyle.Render("[KEEP]")
}
