package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rahulvramesh/filetriage/internal/executor"
	"github.com/rahulvramesh/filetriage/internal/scanner"
	"github.com/rahulvramesh/filetriage/internal/types"
)

func discoverFiles(s *scanner.Scanner, dir string, opts types.DiscoveryOptions) tea.Cmd {
	return func() tea.Msg {
		files, err := s.Discover(dir, opts)
		if err != nil {
			return types.ErrMsg{Err: err}
		}
		return types.DiscoveryCompleteMsg{Dir: dir, Files: files}
	}
}

func applyDecisions(e *executor.Executor, actions []executor.Action) tea.Cmd {
	return func() tea.Msg {
		return types.ApplyCompleteMsg{Report: e.Apply(context.Background(), actions)}
	}
}
