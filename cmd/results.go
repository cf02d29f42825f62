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

var resultsCmd = &cobra.Command{
	Use:   "results <run-id>",
	Short: "Show the scenario results of a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunResults(cmd.Context(), cmd.OutOrStdout(), cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(resultsCmd)
}

func RunResults(ctx context.Context, w io.Writer, cfg *config.Config, id string) error {
	if _, err := os.Stat(cfg.Database); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("run `gwt init` first")
	}

	sqlDB, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	run, err := db.FindRun(ctx, sqlDB, id)
	if err != nil {
		return err
	}

	ui.FeatureLine(w, run.FeaturePath, run.FeatureName)
	for _, r := range run.Results {
		ui.ResultLine(w, r.Pass, r.Name, r.FailedStep)
	}
	ui.SummaryLine(w, run.Passed, run.Failed)
	return nil
}
