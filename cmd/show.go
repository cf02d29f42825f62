package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chriserin/gwt/internal/config"
	"github.com/chriserin/gwt/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file.feature>",
	Short: "Parse a feature file and print its outline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, cfg *config.Config, path string) error {
	h, err := lookupHost(cfg.Host)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	outline, err := h.Outline(string(content))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	ui.ShowOutline(w, outline)
	return nil
}
