package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category is the coarse classification of a file derived from its extension
type Category int

const (
	Text Category = iota
	Image
	Pdf
	Binary
)

// String returns the textual tag used for display and for category ordering
func (c Category) String() string {
	switch c {
	case Text:
		return "Text"
	case Image:
		return "Image"
	case Pdf:
		return "Pdf"
	default:
		return "Binary"
	}
}

// Categories lists every category in declaration order
func Categories() []Category {
	return []Category{Text, Image, Pdf, Binary}
}

// ParseCategory converts a textual tag (any case) into a Category
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return Binary, fmt.Errorf("unknown category %q", s)
}

// FileRecord is an immutable snapshot of one file taken at discovery time
type FileRecord struct {
	Path       string
	Name       string
	Size       uint64
	ModifiedAt time.Time // UTC
	Category   Category
}

// SortKey selects the ordering applied by discovery
type SortKey int

const (
	SortModifiedDate SortKey = iota
	SortName
	SortSize
	SortCategory
)

func (k SortKey) String() string {
	switch k {
	case SortName:
		return "name"
	case SortSize:
		return "size"
	case SortCategory:
		return "category"
	default:
		return "date"
	}
}

// ParseSortKey accepts "date" (or "modified"), "name", "size" and "category" (or "type")
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date", "modified", "modifieddate", "":
		return SortModifiedDate, nil
	case "name":
		return SortName, nil
	case "size":
		return SortSize, nil
	case "category", "type":
		return SortCategory, nil
	}
	return SortModifiedDate, fmt.Errorf("unknown sort key %q", s)
}

// DiscoveryOptions configures a single discovery run
type DiscoveryOptions struct {
	Categories []Category // nil allows every category
	ShowHidden bool
	MinSize    *uint64 // inclusive
	MaxSize    *uint64 // inclusive
	Pattern    string  // glob over the file name, empty matches everything
	SortKey    SortKey
	Reverse    bool
}

// DefaultDiscoveryOptions returns options with no filters, hidden files excluded
// and ascending modification-date order.
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		ShowHidden: false,
		SortKey:    SortModifiedDate,
	}
}

// Decision is the operator's verdict on one file
type Decision int

const (
	Keep Decision = iota
	Trash
)

func (d Decision) String() string {
	if d == Trash {
		return "Trash"
	}
	return "Keep"
}

// HistoryEntry is one recorded decision: the file index at the time and the verdict
type HistoryEntry struct {
	Index    int
	Decision Decision
}

// ErrNotDirectory is wrapped by FilesystemError when the target is not a directory
var ErrNotDirectory = errors.New("not a directory")

// FilesystemError reports that the discovery target could not be opened or read
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// ApplyReport summarises one executor run over the trash decisions
type ApplyReport struct {
	Moved   []string // source paths moved into the trash directory
	Deleted []string
	Skipped []string // dry run: paths that would have been acted on
	Failed  map[string]error
	Freed   uint64
	DryRun  bool
}

// Messages
type DiscoveryCompleteMsg struct {
	Dir   string
	Files []FileRecord
}

type ApplyCompleteMsg struct {
	Report ApplyReport
}

type ErrMsg struct{ Err error }

func (e ErrMsg) Error() string { return e.Err.Error() }

func (e ErrMsg) Unwrap() error { return e.Err }
