package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/services"
)

var errSettingsServiceMissing = errors.New("settings service not configured")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change cvdash settings.

Settings are stored in config.toml inside the config directory.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting.

Available keys:
  dashboard.grace_interval_ms - Delay before a deleted CV leaves the store (0-10000)
  storage.backend             - sqlite or memory
  storage.data_dir            - Directory holding the CV database`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Dashboard]")
	cmd.Printf("  Grace interval: %s\n", settings.GraceInterval)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.StorageBackend)
	dataDir := settings.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Println()

	if path := settingsService.ConfigPath(); path != "" {
		cmd.Printf("Config file: %s\n", path)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}
	key, value := args[0], args[1]

	var err error
	switch key {
	case services.KeyGraceIntervalMS:
		ms, convErr := strconv.Atoi(value)
		if convErr != nil {
			return fmt.Errorf("%w: %s must be a whole number of milliseconds", domain.ErrInvalidInput, key)
		}
		err = settingsService.SetGraceInterval(time.Duration(ms) * time.Millisecond)
	case services.KeyStorageBackend:
		err = settingsService.SetStorageBackend(domain.StorageBackend(value))
	case services.KeyStorageDataDir:
		err = settingsService.SetDataDir(value)
	default:
		return fmt.Errorf("%w: unknown key %q (available: %s)",
			domain.ErrInvalidInput, key, strings.Join(services.SettingKeys, ", "))
	}
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
