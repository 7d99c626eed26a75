// Package executor carries out triage verdicts on disk. Keep is a no-op;
// Trash either moves the file into a trash directory or deletes it.
package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/rahulvramesh/filetriage/internal/logging"
	"github.com/rahulvramesh/filetriage/internal/triage"
	"github.com/rahulvramesh/filetriage/internal/types"
)

// Mode selects what happens to trashed files
type Mode string

const (
	ModeMove   Mode = "move"
	ModeDelete Mode = "delete"
)

// ParseMode validates a mode string
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeMove:
		return ModeMove, nil
	case ModeDelete:
		return ModeDelete, nil
	}
	return "", fmt.Errorf("unknown trash mode %q (want %q or %q)", s, ModeMove, ModeDelete)
}

// Action is one pending disk operation
type Action struct {
	File types.FileRecord
}

// Plan turns resolved decisions into actions. Keep produces nothing; indices
// outside files are ignored.
func Plan(files []types.FileRecord, resolutions []triage.Resolution) []Action {
	var actions []Action
	for _, r := range resolutions {
		if r.Decision != types.Trash || r.Index < 0 || r.Index >= len(files) {
			continue
		}
		actions = append(actions, Action{File: files[r.Index]})
	}
	return actions
}

// Options configures an Executor
type Options struct {
	Mode     Mode
	TrashDir string
	DryRun   bool
}

// Executor applies actions through an afero filesystem
type Executor struct {
	fs   afero.Fs
	opts Options
	log  *logging.Logger
}

// New creates an executor. A nil fs means the OS filesystem.
func New(fs afero.Fs, opts Options, log *logging.Logger) *Executor {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if opts.Mode == "" {
		opts.Mode = ModeMove
	}
	if log == nil {
		log = logging.NopLogger()
	}
	return &Executor{fs: fs, opts: opts, log: log.With("mode", string(opts.Mode), "dry_run", opts.DryRun)}
}

// Apply runs every action. Individual failures are collected in the report;
// cancellation stops the batch before the next file.
func (e *Executor) Apply(ctx context.Context, actions []Action) types.ApplyReport {
	report := types.ApplyReport{
		Failed: make(map[string]error),
		DryRun: e.opts.DryRun,
	}

	if e.opts.Mode == ModeMove && !e.opts.DryRun && len(actions) > 0 {
		if err := e.fs.MkdirAll(e.opts.TrashDir, 0o755); err != nil {
			for _, a := range actions {
				report.Failed[a.File.Path] = fmt.Errorf("failed to create trash directory: %w", err)
			}
			e.log.Error("trash directory unavailable", "dir", e.opts.TrashDir, "error", err)
			return report
		}
	}

	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			report.Failed[a.File.Path] = err
			continue
		}

		path := a.File.Path
		if e.opts.DryRun {
			report.Skipped = append(report.Skipped, path)
			continue
		}

		var err error
		switch e.opts.Mode {
		case ModeDelete:
			err = e.fs.Remove(path)
			if err == nil {
				report.Deleted = append(report.Deleted, path)
			}
		default:
			var dst string
			dst, err = e.move(path)
			if err == nil {
				report.Moved = append(report.Moved, path)
				e.log.Debug("moved to trash", "path", path, "dest", dst)
			}
		}

		if err != nil {
			report.Failed[path] = err
			e.log.Warn("trash action failed", "path", path, "error", err)
			continue
		}
		report.Freed += a.File.Size
	}

	e.log.Info("apply complete",
		"moved", len(report.Moved),
		"deleted", len(report.Deleted),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed),
	)
	return report
}

// move renames path into the trash directory without overwriting existing entries.
func (e *Executor) move(path string) (string, error) {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	dst := filepath.Join(e.opts.TrashDir, name)
	for i := 1; ; i++ {
		_, err := e.fs.Stat(dst)
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return "", err
		}
		dst = filepath.Join(e.opts.TrashDir, fmt.Sprintf("%s.%d%s", stem, i, ext))
	}

	if err := e.fs.Rename(path, dst); err != nil {
		return "", fmt.Errorf("failed to move %s: %w", path, err)
	}
	return dst, nil
}

// Mode reports whether trashed files are moved or deleted
func (e *Executor) Mode() Mode { return e.opts.Mode }

// DryRun reports whether Apply only records what it would do
func (e *Executor) DryRun() bool { return e.opts.DryRun }

// TrashDir is the directory trashed files are moved into in ModeMove
func (e *Executor) TrashDir() string { return e.opts.TrashDir }
