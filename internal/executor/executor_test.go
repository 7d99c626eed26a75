package executor

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulvramesh/filetriage/internal/triage"
	"github.com/rahulvramesh/filetriage/internal/types"
)

const dir = "/photos"

func setup(t *testing.T, names ...string) (afero.Fs, []types.FileRecord) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(dir, 0o755))

	files := make([]types.FileRecord, len(names))
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, afero.WriteFile(fs, path, []byte("data"), 0o644))
		files[i] = types.FileRecord{Path: path, Name: name, Size: 4}
	}
	return fs, files
}

func exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	return ok
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	m, err := ParseMode("MOVE")
	require.NoError(t, err)
	assert.Equal(t, ModeMove, m)

	m, err = ParseMode("delete")
	require.NoError(t, err)
	assert.Equal(t, ModeDelete, m)

	_, err = ParseMode("shred")
	assert.Error(t, err)
}

func TestPlanOnlyTrash(t *testing.T) {
	t.Parallel()

	_, files := setup(t, "a.jpg", "b.jpg", "c.jpg")
	s := triage.NewSession(files)
	s.RecordDecision(types.Trash)
	s.Advance()
	s.RecordDecision(types.Keep)
	s.Advance()
	s.RecordDecision(types.Trash)
	s.RecordDecision(types.Keep)

	actions := Plan(s.Files(), s.Resolve())
	require.Len(t, actions, 1)
	assert.Equal(t, "a.jpg", actions[0].File.Name)
}

func TestPlanIgnoresOutOfRangeIndices(t *testing.T) {
	t.Parallel()

	_, files := setup(t, "a.jpg")
	actions := Plan(files, []triage.Resolution{
		{Index: -1, Decision: types.Trash},
		{Index: 5, Decision: types.Trash},
	})
	assert.Empty(t, actions)
}

func TestApplyMove(t *testing.T) {
	t.Parallel()

	fs, files := setup(t, "a.jpg", "b.jpg")
	trash := filepath.Join(dir, ".triage-trash")
	require.NoError(t, fs.MkdirAll(trash, 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(trash, "a.jpg"), []byte("old"), 0o644))

	e := New(fs, Options{Mode: ModeMove, TrashDir: trash}, nil)
	report := e.Apply(context.Background(), []Action{{File: files[0]}, {File: files[1]}})

	assert.Empty(t, report.Failed)
	assert.Equal(t, []string{files[0].Path, files[1].Path}, report.Moved)
	assert.Equal(t, uint64(8), report.Freed)

	assert.False(t, exists(t, fs, files[0].Path))
	assert.True(t, exists(t, fs, filepath.Join(trash, "a.1.jpg")), "collision gets a suffix")
	assert.True(t, exists(t, fs, filepath.Join(trash, "b.jpg")))

	old, err := afero.ReadFile(fs, filepath.Join(trash, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(old), "existing trash entries are never overwritten")
}

func TestExecutorAccessors(t *testing.T) {
	t.Parallel()

	e := New(afero.NewMemMapFs(), Options{TrashDir: "/trash", DryRun: true}, nil)
	assert.Equal(t, ModeMove, e.Mode(), "move is the default mode")
	assert.True(t, e.DryRun())
	assert.Equal(t, "/trash", e.TrashDir())
}

func TestApplyDelete(t *testing.T) {
	t.Parallel()

	fs, files := setup(t, "a.jpg", "b.jpg")
	e := New(fs, Options{Mode: ModeDelete}, nil)

	report := e.Apply(context.Background(), []Action{{File: files[1]}})
	assert.Equal(t, []string{files[1].Path}, report.Deleted)
	assert.True(t, exists(t, fs, files[0].Path))
	assert.False(t, exists(t, fs, files[1].Path))
}

func TestApplyDryRun(t *testing.T) {
	t.Parallel()

	fs, files := setup(t, "a.jpg")
	trash := filepath.Join(dir, ".triage-trash")
	e := New(fs, Options{Mode: ModeMove, TrashDir: trash, DryRun: true}, nil)

	report := e.Apply(context.Background(), []Action{{File: files[0]}})
	assert.True(t, report.DryRun)
	assert.Equal(t, []string{files[0].Path}, report.Skipped)
	assert.Zero(t, report.Freed)
	assert.True(t, exists(t, fs, files[0].Path))
	assert.False(t, exists(t, fs, trash))
}

func TestApplyCollectsFailures(t *testing.T) {
	t.Parallel()

	fs, files := setup(t, "a.jpg")
	missing := types.FileRecord{Path: filepath.Join(dir, "gone.jpg"), Name: "gone.jpg", Size: 9}

	e := New(fs, Options{Mode: ModeDelete}, nil)
	report := e.Apply(context.Background(), []Action{{File: missing}, {File: files[0]}})

	require.Contains(t, report.Failed, missing.Path)
	assert.Equal(t, []string{files[0].Path}, report.Deleted)
	assert.Equal(t, uint64(4), report.Freed)
}

func TestApplyCancelled(t *testing.T) {
	t.Parallel()

	fs, files := setup(t, "a.jpg")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New(fs, Options{Mode: ModeDelete}, nil)
	report := e.Apply(ctx, []Action{{File: files[0]}})

	assert.ErrorIs(t, report.Failed[files[0].Path], context.Canceled)
	assert.True(t, exists(t, fs, files[0].Path))
}

func TestApplyReadOnlyFilesystem(t *testing.T) {
	t.Parallel()

	fs, files := setup(t, "a.jpg")
	e := New(afero.NewReadOnlyFs(fs), Options{Mode: ModeMove, TrashDir: "/trash"}, nil)

	report := e.Apply(context.Background(), []Action{{File: files[0]}})
	assert.Contains(t, report.Failed, files[0].Path)
	assert.Empty(t, report.Moved)
	assert.True(t, exists(t, fs, files[0].Path))
}
