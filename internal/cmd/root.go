package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rahulvramesh/filetriage/internal/config"
	"github.com/rahulvramesh/filetriage/internal/executor"
	"github.com/rahulvramesh/filetriage/internal/logging"
	"github.com/rahulvramesh/filetriage/internal/scanner"
	"github.com/rahulvramesh/filetriage/internal/ui"
)

// Execute runs the root command
func Execute() error {
	return newRootCmd(viper.New(), afero.NewOsFs()).Execute()
}

// newRootCmd builds the command tree around its own viper instance and filesystem.
func newRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:   "filetriage [dir]",
		Short: "Keep or trash the files of a directory, one at a time",
		Long: `filetriage lists the files of a directory and presents them one by one.
Mark each file Keep or Trash, undo mistakes, and apply the result at the end.
Trashed files are moved into a trash directory (or deleted with --trash-mode delete).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTriage(v, fs, targetDir(args))
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/filetriage/config.yaml)")
	flags.BoolP("hidden", "a", false, "include hidden files")
	flags.StringP("sort", "s", "date", "sort by: date, name, size, category")
	flags.BoolP("reverse", "r", false, "reverse the sort order")
	flags.String("min-size", "", "only files at least this large (e.g. 10MB)")
	flags.String("max-size", "", "only files at most this large (e.g. 1GiB)")
	flags.StringSliceP("type", "t", nil, "only these categories: Text, Image, Pdf, Binary (repeatable)")
	flags.StringP("match", "m", "", "only names matching this glob (e.g. '*.{jpg,png}')")
	flags.String("log-file", "", "write debug logs to this file")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	root.Flags().String("trash-mode", "move", "what to do with trashed files: move or delete")
	root.Flags().String("trash-dir", ".triage-trash", "trash directory, relative to the triaged directory")
	root.Flags().Bool("dry-run", false, "report what would be trashed without touching files")

	bind(v, flags, map[string]string{
		"config":                "config",
		"discovery.show_hidden": "hidden",
		"discovery.sort_by":     "sort",
		"discovery.reverse":     "reverse",
		"discovery.min_size":    "min-size",
		"discovery.max_size":    "max-size",
		"discovery.categories":  "type",
		"discovery.pattern":     "match",
		"logging.file":          "log-file",
		"logging.level":         "log-level",
	})
	bind(v, root.Flags(), map[string]string{
		"trash.mode":    "trash-mode",
		"trash.dir":     "trash-dir",
		"trash.dry_run": "dry-run",
	})

	root.AddCommand(newListCmd(v, fs))
	return root
}

func bind(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig(v *viper.Viper) error {
	// Set defaults first so they're available even without a config file
	config.SetDefaults(v)

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(config.ConfigDir())
	}

	v.SetEnvPrefix("FILETRIAGE")
	// e.g. FILETRIAGE_DISCOVERY_SORT_BY for discovery.sort_by
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && v.GetString("config") == "" {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func targetDir(args []string) string {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

func runTriage(v *viper.Viper, fs afero.Fs, dir string) error {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level, nil)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()
	log = log.With("dir", dir)

	opts, err := cfg.DiscoveryOptions()
	if err != nil {
		return err
	}
	execOpts, err := cfg.ExecutorOptions(dir)
	if err != nil {
		return err
	}

	sc := scanner.NewScanner(fs, log)
	// fail before the alt screen takes over the terminal
	if err := sc.CheckDir(dir); err != nil {
		return err
	}

	model := ui.InitialModel(ui.Options{
		Dir:       dir,
		Discovery: opts,
		Scanner:   sc,
		Executor:  executor.New(fs, execOpts, log),
		Logger:    log,
	})

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run triage UI: %w", err)
	}

	m, ok := final.(ui.Model)
	if !ok {
		return nil
	}
	if err := m.Err(); err != nil {
		return err
	}
	if r := m.Report(); r != nil {
		log.Info("session finished",
			"moved", len(r.Moved),
			"deleted", len(r.Deleted),
			"failed", len(r.Failed),
			"freed", r.Freed,
		)
		if len(r.Failed) > 0 {
			return fmt.Errorf("%d file(s) could not be trashed", len(r.Failed))
		}
	}
	return nil
}
