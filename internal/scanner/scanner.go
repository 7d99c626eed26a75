package scanner

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/rahulvramesh/filetriage/internal/logging"
	"github.com/rahulvramesh/filetriage/internal/types"
)

// Scanner performs directory discovery over an afero filesystem.
// It never writes to the filesystem.
type Scanner struct {
	fs  afero.Fs
	log *logging.Logger
}

// SkippedEntry is a directory child whose metadata could not be read
type SkippedEntry struct {
	Path string
	Err  error
}

// DiscoveryResult carries the ordered records plus the entries dropped
// because their metadata was unreadable.
type DiscoveryResult struct {
	Files   []types.FileRecord
	Skipped []SkippedEntry
}

// NewScanner creates a new scanner instance. A nil fs means the OS filesystem.
func NewScanner(fs afero.Fs, log *logging.Logger) *Scanner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if log == nil {
		log = logging.NopLogger()
	}
	return &Scanner{fs: fs, log: log}
}

// DiscoverDefault runs Discover with DefaultDiscoveryOptions.
func (s *Scanner) DiscoverDefault(dir string) ([]types.FileRecord, error) {
	return s.Discover(dir, types.DefaultDiscoveryOptions())
}

// Discover lists the files directly inside dir, filtered and ordered by opts.
// Entries whose metadata cannot be read are silently left out; failing to
// open or read dir itself returns a *types.FilesystemError.
func (s *Scanner) Discover(dir string, opts types.DiscoveryOptions) ([]types.FileRecord, error) {
	res, err := s.DiscoverDetailed(dir, opts)
	if err != nil {
		return nil, err
	}
	return res.Files, nil
}

// DiscoverDetailed is Discover that also reports the skipped entries.
func (s *Scanner) DiscoverDetailed(dir string, opts types.DiscoveryOptions) (*DiscoveryResult, error) {
	f, err := newFilter(opts)
	if err != nil {
		return nil, err
	}

	if err := s.CheckDir(dir); err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, &types.FilesystemError{Op: "readdir", Path: dir, Err: err}
	}

	res := &DiscoveryResult{Files: []types.FileRecord{}}
	for _, entry := range entries {
		name := entry.Name()
		if !opts.ShowHidden && isHidden(name) {
			continue
		}

		path := filepath.Join(dir, name)
		rec, isDir, err := s.record(path, name)
		if err != nil {
			s.log.Debug("skipping unreadable entry", "path", path, "error", err)
			res.Skipped = append(res.Skipped, SkippedEntry{Path: path, Err: err})
			continue
		}
		if isDir || !f.match(rec) {
			continue
		}
		res.Files = append(res.Files, rec)
	}

	sortRecords(res.Files, opts.SortKey)
	if opts.Reverse {
		slices.Reverse(res.Files)
	}

	s.log.Info("discovery complete",
		"dir", dir,
		"files", len(res.Files),
		"skipped", len(res.Skipped),
		"sort", opts.SortKey.String(),
		"reverse", opts.Reverse,
	)
	return res, nil
}

// CheckDir reports whether dir exists and is a directory, returning the same
// *types.FilesystemError that Discover would.
func (s *Scanner) CheckDir(dir string) error {
	info, err := s.fs.Stat(dir)
	if err != nil {
		return &types.FilesystemError{Op: "stat", Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &types.FilesystemError{Op: "open", Path: dir, Err: types.ErrNotDirectory}
	}
	return nil
}

// record reads metadata for one entry, following symlinks.
func (s *Scanner) record(path, name string) (types.FileRecord, bool, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return types.FileRecord{}, false, err
	}
	if info.IsDir() {
		return types.FileRecord{}, true, nil
	}

	size := info.Size()
	if size < 0 {
		size = 0
	}
	return types.FileRecord{
		Path:       path,
		Name:       name,
		Size:       uint64(size),
		ModifiedAt: info.ModTime().UTC(),
		Category:   CategoryFromName(name),
	}, false, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// sortRecords orders records in place. The sort is stable so equal keys keep
// their enumeration order.
func sortRecords(files []types.FileRecord, key types.SortKey) {
	slices.SortStableFunc(files, func(a, b types.FileRecord) int {
		switch key {
		case types.SortName:
			return strings.Compare(a.Name, b.Name)
		case types.SortSize:
			return cmp.Compare(a.Size, b.Size)
		case types.SortCategory:
			return strings.Compare(a.Category.String(), b.Category.String())
		default:
			return a.ModifiedAt.Compare(b.ModifiedAt)
		}
	})
}
