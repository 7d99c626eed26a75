package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rahulvramesh/filetriage/internal/executor"
	"github.com/rahulvramesh/filetriage/internal/logging"
	"github.com/rahulvramesh/filetriage/internal/scanner"
	"github.com/rahulvramesh/filetriage/internal/triage"
	"github.com/rahulvramesh/filetriage/internal/types"
)

const (
	stateLoading  = "loading"
	stateTriage   = "triage"
	stateSummary  = "summary"
	stateApplying = "applying"
	stateDone     = "done"
)

// Model represents the application state
type Model struct {
	scanner  *scanner.Scanner
	executor *executor.Executor
	log      *logging.Logger
	dir      string
	opts     types.DiscoveryOptions

	state   string // one of the state* constants
	session *triage.Session
	report  *types.ApplyReport
	message string // one-line feedback for the last action
	err     error

	spinner  spinner.Model
	progress progress.Model
	help     help.Model
	keys     keyMap
	width    int
	height   int
}

// Options wires the collaborators of the UI
type Options struct {
	Dir       string
	Discovery types.DiscoveryOptions
	Scanner   *scanner.Scanner
	Executor  *executor.Executor
	Logger    *logging.Logger
}

// InitialModel builds the model in its loading state
func InitialModel(o Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	log := o.Logger
	if log == nil {
		log = logging.NopLogger()
	}

	return Model{
		scanner:  o.Scanner,
		executor: o.Executor,
		log:      log,
		dir:      o.Dir,
		opts:     o.Discovery,
		state:    stateLoading,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:     help.New(),
		keys:     defaultKeyMap(),
	}
}

// Init starts the spinner and the discovery scan
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		discoverFiles(m.scanner, m.dir, m.opts),
	)
}

// Session exposes the triage session once discovery has finished
func (m Model) Session() *triage.Session { return m.session }

// Report returns the executor report after apply
func (m Model) Report() *types.ApplyReport { return m.report }

// Err returns the failure that ended discovery or apply, if any
func (m Model) Err() error { return m.err }
