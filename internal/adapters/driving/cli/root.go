// Package cli provides the cobra command tree for cvdash.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gradsuite/cvdash/internal/core/ports/driving"
	"github.com/gradsuite/cvdash/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Options carries the persistent flags.
type Options struct {
	// Verbose enables debug logging.
	Verbose bool

	// ConfigDir overrides the config directory (~/.cvdash).
	ConfigDir string

	// DataDir overrides the directory holding the CV database.
	DataDir string

	// Memory keeps CVs in process memory instead of SQLite.
	Memory bool
}

// Services holds what the commands call into. main builds it once the
// persistent flags are parsed.
type Services struct {
	CV       driving.CVService
	Settings driving.SettingsService

	// Deleter runs grace-period deletes for the TUI.
	Deleter driving.Deleter

	// Changes signals external store modifications. Optional.
	Changes <-chan struct{}

	// LogPath receives verbose logs while the TUI owns the terminal.
	LogPath string

	// Close releases stores and watchers. Optional.
	Close func() error
}

// Bootstrap builds the services for opts.
type Bootstrap func(opts Options) (*Services, error)

var (
	opts      Options
	bootstrap Bootstrap
	current   *Services

	cvService       driving.CVService
	settingsService driving.SettingsService
)

var errCVServiceMissing = errors.New("cv service not configured")

// noServices marks commands that run without a store.
const noServices = "cvdash/no-services"

var rootCmd = &cobra.Command{
	Use:   "cvdash",
	Short: "Manage your CVs from the terminal",
	Long: `cvdash keeps a collection of CVs and lets you search, create, edit,
preview and delete them.

Run without a subcommand to open the dashboard. When stdout is not a
terminal the collection is listed instead.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runRoot,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "config directory (default ~/.cvdash)")
	flags.StringVar(&opts.DataDir, "data-dir", "", "directory holding the CV database")
	flags.BoolVar(&opts.Memory, "memory", false, "keep CVs in memory only")
}

// SetBootstrap registers the function that wires services from flags.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs services directly, bypassing the bootstrap.
func SetServices(s *Services) {
	current = s
	if s == nil {
		cvService = nil
		settingsService = nil
		return
	}
	cvService = s.CV
	settingsService = s.Settings
}

// SetVersion sets the version reported by `cvdash version`.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx. Cancelling ctx stops
// the TUI and drops deletes still in their grace interval.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)
	if bootstrap == nil || current != nil || cmd.Annotations[noServices] != "" {
		return nil
	}

	logger.Section("bootstrap")
	s, err := bootstrap(opts)
	if err != nil {
		return fmt.Errorf("starting cvdash: %w", err)
	}
	SetServices(s)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if bootstrap == nil || current == nil || current.Close == nil {
		return nil
	}
	err := current.Close()
	SetServices(nil)
	return err
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isTerminal(os.Stdout) {
		return runTUI(cmd, args)
	}
	return runCVList(cmd, args)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
