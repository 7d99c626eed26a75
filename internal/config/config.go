package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"

	"github.com/rahulvramesh/filetriage/internal/executor"
	"github.com/rahulvramesh/filetriage/internal/types"
)

// Config represents the complete filetriage configuration
type Config struct {
	Discovery DiscoveryConfig `mapstructure:"discovery"`
	Trash     TrashConfig     `mapstructure:"trash"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DiscoveryConfig controls which files are presented and in what order
type DiscoveryConfig struct {
	// ShowHidden includes dotfiles
	ShowHidden bool `mapstructure:"show_hidden"`
	// SortBy is one of "date", "name", "size", "category"
	SortBy string `mapstructure:"sort_by"`
	// Reverse flips the final order
	Reverse bool `mapstructure:"reverse"`
	// MinSize and MaxSize are inclusive bounds in humanized form ("10MB", "512KiB").
	// Empty means unbounded.
	MinSize string `mapstructure:"min_size"`
	MaxSize string `mapstructure:"max_size"`
	// Categories restricts the file categories (Text, Image, Pdf, Binary). Empty means all.
	Categories []string `mapstructure:"categories"`
	// Pattern is a glob over file names, e.g. "*.{jpg,png}"
	Pattern string `mapstructure:"pattern"`
}

// TrashConfig controls what happens to files marked Trash
type TrashConfig struct {
	// Mode is "move" (into Dir) or "delete"
	Mode string `mapstructure:"mode"`
	// Dir is the trash directory; relative paths resolve against the triaged directory
	Dir string `mapstructure:"dir"`
	// DryRun reports actions without touching the filesystem
	DryRun bool `mapstructure:"dry_run"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// File is the log file path; empty disables logging
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Discovery: DiscoveryConfig{
			SortBy:     "date",
			Categories: []string{},
		},
		Trash: TrashConfig{
			Mode: string(executor.ModeMove),
			Dir:  ".triage-trash",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers the defaults on v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("discovery.show_hidden", defaults.Discovery.ShowHidden)
	v.SetDefault("discovery.sort_by", defaults.Discovery.SortBy)
	v.SetDefault("discovery.reverse", defaults.Discovery.Reverse)
	v.SetDefault("discovery.min_size", defaults.Discovery.MinSize)
	v.SetDefault("discovery.max_size", defaults.Discovery.MaxSize)
	v.SetDefault("discovery.categories", defaults.Discovery.Categories)
	v.SetDefault("discovery.pattern", defaults.Discovery.Pattern)

	v.SetDefault("trash.mode", defaults.Trash.Mode)
	v.SetDefault("trash.dir", defaults.Trash.Dir)
	v.SetDefault("trash.dry_run", defaults.Trash.DryRun)

	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)
}

// LoadFrom reads the configuration from v and validates it
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "filetriage")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".filetriage"
	}
	return filepath.Join(home, ".config", "filetriage")
}

// DiscoveryOptions converts the discovery section. The config must have passed Validate.
func (c *Config) DiscoveryOptions() (types.DiscoveryOptions, error) {
	d := c.Discovery
	opts := types.DefaultDiscoveryOptions()
	opts.ShowHidden = d.ShowHidden
	opts.Reverse = d.Reverse
	opts.Pattern = d.Pattern

	key, err := types.ParseSortKey(d.SortBy)
	if err != nil {
		return opts, err
	}
	opts.SortKey = key

	if opts.MinSize, err = parseSize(d.MinSize); err != nil {
		return opts, err
	}
	if opts.MaxSize, err = parseSize(d.MaxSize); err != nil {
		return opts, err
	}

	for _, name := range d.Categories {
		if strings.TrimSpace(name) == "" {
			continue
		}
		cat, err := types.ParseCategory(strings.TrimSpace(name))
		if err != nil {
			return opts, err
		}
		opts.Categories = append(opts.Categories, cat)
	}
	return opts, nil
}

// ExecutorOptions builds executor options for a triage run over baseDir.
func (c *Config) ExecutorOptions(baseDir string) (executor.Options, error) {
	mode, err := executor.ParseMode(c.Trash.Mode)
	if err != nil {
		return executor.Options{}, err
	}

	dir := c.Trash.Dir
	if dir == "" {
		dir = Default().Trash.Dir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(baseDir, dir)
	}
	return executor.Options{Mode: mode, TrashDir: dir, DryRun: c.Trash.DryRun}, nil
}

func parseSize(s string) (*uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
