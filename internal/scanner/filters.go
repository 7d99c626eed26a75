package scanner

import (
	"fmt"
	"slices"

	"github.com/gobwas/glob"

	"github.com/rahulvramesh/filetriage/internal/types"
)

// filter holds the post-metadata inclusion rules of one discovery run
type filter struct {
	categories []types.Category
	minSize    *uint64
	maxSize    *uint64
	pattern    glob.Glob
}

func newFilter(opts types.DiscoveryOptions) (*filter, error) {
	f := &filter{
		categories: opts.Categories,
		minSize:    opts.MinSize,
		maxSize:    opts.MaxSize,
	}
	if opts.Pattern != "" {
		g, err := glob.Compile(opts.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid name pattern %q: %w", opts.Pattern, err)
		}
		f.pattern = g
	}
	return f, nil
}

// match reports whether rec passes every active filter
func (f *filter) match(rec types.FileRecord) bool {
	if f.categories != nil && !slices.Contains(f.categories, rec.Category) {
		return false
	}
	if f.minSize != nil && rec.Size < *f.minSize {
		return false
	}
	if f.maxSize != nil && rec.Size > *f.maxSize {
		return false
	}
	if f.pattern != nil && !f.pattern.Match(rec.Name) {
		return false
	}
	return true
}

// ValidatePattern reports whether pattern compiles as a name glob.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := glob.Compile(pattern); err != nil {
		return fmt.Errorf("invalid name pattern %q: %w", pattern, err)
	}
	return nil
}
