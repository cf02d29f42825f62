package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/chriserin/gwt/internal/config"
	"github.com/chriserin/gwt/internal/db"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize gwt in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout(), cfg, configPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer, cfg *config.Config, cfgPath string) error {
	// features directory
	_, err := os.Stat(cfg.Features)
	dirExists := err == nil
	if err := os.MkdirAll(cfg.Features, 0o755); err != nil {
		return fmt.Errorf("creating %s directory: %w", cfg.Features, err)
	}
	if dirExists {
		fmt.Fprintf(w, "%s/ already exists\n", cfg.Features)
	} else {
		fmt.Fprintf(w, "%s/ created\n", cfg.Features)
	}

	// history database
	_, err = os.Stat(cfg.Database)
	dbExists := err == nil
	sqlDB, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintf(w, "%s already exists\n", cfg.Database)
	} else {
		fmt.Fprintf(w, "%s created\n", cfg.Database)
	}

	// config file
	if _, err := os.Stat(cfgPath); errors.Is(err, fs.ErrNotExist) {
		if err := cfg.Save(cfgPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s created\n", cfgPath)
	} else {
		fmt.Fprintf(w, "%s already exists\n", cfgPath)
	}

	// gitignore
	msgs, err := ensureGitignore(cfg.Database)
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func ensureGitignore(entry string) ([]string, error) {
	data, err := os.ReadFile(".gitignore")
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", entry + " added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == entry {
			return []string{entry + " already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{entry + " added to .gitignore"}, nil
}
