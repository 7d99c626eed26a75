package config

import (
	"fmt"
	"strings"

	"github.com/rahulvramesh/filetriage/internal/executor"
	"github.com/rahulvramesh/filetriage/internal/logging"
	"github.com/rahulvramesh/filetriage/internal/scanner"
	"github.com/rahulvramesh/filetriage/internal/types"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "discovery.sort_by")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, c.validateDiscovery()...)
	errs = append(errs, c.validateTrash()...)
	errs = append(errs, c.validateLogging()...)
	return errs
}

func (c *Config) validateDiscovery() []ValidationError {
	var errs []ValidationError
	d := c.Discovery

	if _, err := types.ParseSortKey(d.SortBy); err != nil {
		errs = append(errs, ValidationError{
			Field:   "discovery.sort_by",
			Value:   d.SortBy,
			Message: "must be one of date, name, size, category",
		})
	}

	for _, name := range d.Categories {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, err := types.ParseCategory(strings.TrimSpace(name)); err != nil {
			errs = append(errs, ValidationError{
				Field:   "discovery.categories",
				Value:   name,
				Message: "must be one of Text, Image, Pdf, Binary",
			})
		}
	}

	minSize, minErr := parseSize(d.MinSize)
	if minErr != nil {
		errs = append(errs, ValidationError{Field: "discovery.min_size", Value: d.MinSize, Message: "must be a size such as 10MB"})
	}
	maxSize, maxErr := parseSize(d.MaxSize)
	if maxErr != nil {
		errs = append(errs, ValidationError{Field: "discovery.max_size", Value: d.MaxSize, Message: "must be a size such as 10MB"})
	}
	if minSize != nil && maxSize != nil && *minSize > *maxSize {
		errs = append(errs, ValidationError{
			Field:   "discovery.min_size",
			Value:   d.MinSize,
			Message: fmt.Sprintf("must not exceed max_size (%s)", d.MaxSize),
		})
	}

	if err := scanner.ValidatePattern(d.Pattern); err != nil {
		errs = append(errs, ValidationError{Field: "discovery.pattern", Value: d.Pattern, Message: "must be a valid glob"})
	}

	return errs
}

func (c *Config) validateTrash() []ValidationError {
	if _, err := executor.ParseMode(c.Trash.Mode); err != nil {
		return []ValidationError{{Field: "trash.mode", Value: c.Trash.Mode, Message: "must be move or delete"}}
	}
	return nil
}

func (c *Config) validateLogging() []ValidationError {
	if !logging.ValidLevel(c.Logging.Level) {
		return []ValidationError{{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: "must be one of debug, info, warn, error",
		}}
	}
	return nil
}
