package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/chriserin/gwt/internal/config"
	"github.com/chriserin/gwt/internal/db"
	"github.com/chriserin/gwt/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the latest recorded result of each feature file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunStatus(cmd.Context(), cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func RunStatus(ctx context.Context, w io.Writer, cfg *config.Config) error {
	if _, err := os.Stat(cfg.Database); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("run `gwt init` first")
	}

	sqlDB, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	runs, err := db.LatestRuns(ctx, sqlDB)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Features: %d\n", len(runs))
	if len(runs) == 0 {
		return nil
	}

	var passed, failed int
	for _, r := range runs {
		ui.StatusRow(w, r.FeaturePath, r.Passed, r.Failed)
		passed += r.Passed
		failed += r.Failed
	}
	ui.SummaryLine(w, passed, failed)
	return nil
}
