package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/chriserin/gwt/internal/config"
	"github.com/chriserin/gwt/internal/db"
	"github.com/chriserin/gwt/internal/ui"
	"github.com/spf13/cobra"
)

var failedFlag bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.Context(), cmd.OutOrStdout(), cfg, failedFlag)
	},
}

func init() {
	listCmd.Flags().BoolVar(&failedFlag, "failed", false, "Show only runs with failing scenarios")
	rootCmd.AddCommand(listCmd)
}

func RunList(ctx context.Context, w io.Writer, cfg *config.Config, failedOnly bool) error {
	if _, err := os.Stat(cfg.Database); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("run `gwt init` first")
	}

	sqlDB, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	runs, err := db.ListRuns(ctx, sqlDB, failedOnly)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no runs recorded")
		return nil
	}

	// Compute column widths
	pathWidth, nameWidth := 0, 0
	for _, r := range runs {
		if n := len(filepath.Base(r.FeaturePath)); n > pathWidth {
			pathWidth = n
		}
		if len(r.FeatureName) > nameWidth {
			nameWidth = len(r.FeatureName)
		}
	}

	for _, r := range runs {
		ui.ListRow(w, r.ID[:8], r.StartedAt.Format("2006-01-02 15:04:05"),
			filepath.Base(r.FeaturePath), r.FeatureName, r.Passed, r.Failed, pathWidth, nameWidth)
	}
	return nil
}
