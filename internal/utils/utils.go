package utils

import (
	"time"

	"github.com/dustin/go-humanize"
)

// CalculateProgress returns done/total as a fraction in [0, 1]
func CalculateProgress(done, total int) float64 {
	if total <= 0 || done <= 0 {
		return 0
	}
	if done >= total {
		return 1
	}
	return float64(done) / float64(total)
}

// FormatFileSize formats file size using humanize
func FormatFileSize(size uint64) string {
	return humanize.IBytes(size)
}

// FormatModified renders a modification time relative to now ("3 days ago")
func FormatModified(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.Time(t)
}

// TruncatePath shortens a path from the left, keeping its tail visible
func TruncatePath(path string, maxLen int) string {
	if maxLen <= 3 || len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-(maxLen-3):]
}
