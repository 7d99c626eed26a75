package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rahulvramesh/filetriage/internal/config"
	"github.com/rahulvramesh/filetriage/internal/logging"
	"github.com/rahulvramesh/filetriage/internal/scanner"
	"github.com/rahulvramesh/filetriage/internal/types"
	"github.com/rahulvramesh/filetriage/internal/utils"
)

func newListCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "Print the files in the order they would be triaged",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(v)
			if err != nil {
				return err
			}
			log, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level, nil)
			if err != nil {
				return err
			}
			defer func() { _ = log.Close() }()

			opts, err := cfg.DiscoveryOptions()
			if err != nil {
				return err
			}

			dir := targetDir(args)
			res, err := scanner.NewScanner(fs, log).DiscoverDetailed(dir, opts)
			if err != nil {
				return err
			}

			renderList(cmd.OutOrStdout(), res.Files)
			for _, s := range res.Skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %v\n", s.Path, s.Err)
			}
			return nil
		},
	}
}

func renderList(w io.Writer, files []types.FileRecord) {
	if len(files) == 0 {
		fmt.Fprintln(w, "No files found")
		return
	}

	var total uint64
	rows := make([][]string, 0, len(files))
	for i, f := range files {
		total += f.Size
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			f.Name,
			f.Category.String(),
			utils.FormatFileSize(f.Size),
			f.ModifiedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "NAME", "TYPE", "SIZE", "MODIFIED").
		Rows(rows...)

	fmt.Fprintln(w, t.String())
	fmt.Fprintf(w, "%d file(s), %s\n", len(files), utils.FormatFileSize(total))
}
