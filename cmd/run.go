package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/chriserin/gwt/internal/config"
	"github.com/chriserin/gwt/internal/db"
	"github.com/chriserin/gwt/internal/ui"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file.feature...]",
	Short: "Evaluate feature files and report one result per scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunFeatures(cmd.Context(), cmd.OutOrStdout(), cfg, logger, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// RunFeatures evaluates each file (all *.feature files in the features
// directory when paths is empty) and records the runs when the history
// database exists. It returns an error if any file fails to parse or any
// scenario fails.
func RunFeatures(ctx context.Context, w io.Writer, cfg *config.Config, logger *slog.Logger, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	h, err := lookupHost(cfg.Host)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		paths, err = filepath.Glob(filepath.Join(cfg.Features, "*.feature"))
		if err != nil {
			return fmt.Errorf("scanning %s: %w", cfg.Features, err)
		}
		sort.Strings(paths)
	}
	if len(paths) == 0 {
		fmt.Fprintf(w, "no feature files in %s/\n", cfg.Features)
		return nil
	}

	sqlDB, err := openHistory(cfg.Database, logger)
	if err != nil {
		return err
	}
	if sqlDB != nil {
		defer sqlDB.Close()
	}

	var passed, failed, broken int
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		outline, results, err := h.Run(string(content), logger)
		if err != nil {
			ui.ParseErrorLine(w, path, err)
			broken++
			continue
		}

		ui.FeatureLine(w, path, outline.Name)
		run := db.Run{FeaturePath: path, FeatureName: outline.Name, Host: cfg.Host}
		for i, r := range results {
			ui.ResultLine(w, r.Pass, r.Name, describeFailure(r.Failure))
			res := db.Result{Position: i, Name: r.Name, Pass: r.Pass}
			if r.Pass {
				run.Passed++
			} else {
				run.Failed++
				res.FailedStep = describeFailure(r.Failure)
				if r.Failure != nil {
					res.FailedLine = r.Failure.Line
				}
			}
			run.Results = append(run.Results, res)
		}
		passed += run.Passed
		failed += run.Failed

		if sqlDB != nil {
			id, err := db.RecordRun(ctx, sqlDB, run)
			if err != nil {
				return fmt.Errorf("recording %s: %w", path, err)
			}
			logger.Debug("run recorded", slog.String("id", id), slog.String("path", path))
		}
	}

	ui.SummaryLine(w, passed, failed)

	if broken > 0 {
		return fmt.Errorf("%d feature file(s) failed to parse", broken)
	}
	if failed > 0 {
		return fmt.Errorf("%d scenario(s) failed", failed)
	}
	return nil
}

// openHistory opens the history database if it has been initialized.
func openHistory(path string, logger *slog.Logger) (*sql.DB, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Debug("history database not initialized, results not recorded", slog.String("path", path))
		return nil, nil
	}
	sqlDB, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return sqlDB, nil
}
