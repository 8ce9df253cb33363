package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/gradsuite/cvdash/internal/adapters/driving/tui"
	"github.com/gradsuite/cvdash/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for cvdash.

The dashboard lists your CVs, filters them as you type and lets you
create, edit, preview and delete them with the keyboard.

Controls:
  /        - Search
  ↑/k, ↓/j - Move selection
  n        - New CV
  e/Enter  - Edit
  p        - Preview
  d        - Delete
  Esc      - Back / Clear search
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panicked: %v", r)
		}
	}()

	ports := &tui.Ports{}
	if current != nil {
		ports.CV = current.CV
		ports.Deleter = current.Deleter
		ports.Changes = current.Changes
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	// The alternate screen owns stderr while the program runs.
	if logger.IsVerbose() && current != nil && current.LogPath != "" {
		restore, err := logger.ToFile(current.LogPath)
		if err != nil {
			return err
		}
		defer restore() //nolint:errcheck // best effort on exit
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
