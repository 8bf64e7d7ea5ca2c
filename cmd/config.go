package cmd

import (
	"fmt"
	"strings"

	"github.com/mfriesen/tend/internal/config"
	"github.com/mfriesen/tend/internal/habit"
	"github.com/mfriesen/tend/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	Run: func(_ *cobra.Command, _ []string) {
		paths := config.GetPaths()
		fmt.Println(paths.ConfigFile)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Supported keys:
  analytics        Enable/disable anonymous usage analytics (true/false)
  user.name        Your display name
  defaults.period  Periodicity assumed by tend add (daily/weekly/monthly)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

// configKeys maps user-facing key names to getter/setter pairs.
var configKeys = map[string]struct {
	get func(*config.Config) string
	set func(*config.Config, string) error
}{
	"analytics": {
		get: func(cfg *config.Config) string {
			return fmt.Sprintf("%t", cfg.Analytics.IsEnabled())
		},
		set: func(cfg *config.Config, val string) error {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				cfg.Analytics.Enabled = config.BoolPtr(true)
			case "false", "0", "no", "off":
				cfg.Analytics.Enabled = config.BoolPtr(false)
			default:
				return fmt.Errorf("invalid value %q for analytics (use true/false)", val)
			}
			return nil
		},
	},
	"user.name": {
		get: func(cfg *config.Config) string { return cfg.User.Name },
		set: func(cfg *config.Config, val string) error {
			cfg.User.Name = val
			return nil
		},
	},
	"defaults.period": {
		get: func(cfg *config.Config) string { return cfg.Defaults.Period },
		set: func(cfg *config.Config, val string) error {
			p, err := habit.ParsePeriodicity(val)
			if err != nil {
				return err
			}
			cfg.Defaults.Period = p.Label()
			return nil
		},
	},
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ui.Header("Configuration")
	ui.Kv("user.name", cfg.User.Name)
	ui.Kv("defaults.period", cfg.Defaults.Period)
	ui.Kv("analytics", fmt.Sprintf("%t", cfg.Analytics.IsEnabled()))
	fmt.Println()
	fmt.Printf("  File: %s\n", ui.Muted.Render(config.GetPaths().ConfigFile))
	fmt.Println()
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, val := args[0], args[1]
	entry, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := entry.set(cfg, val); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.Ok(fmt.Sprintf("%s = %s", key, entry.get(cfg)))
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	entry, ok := configKeys[args[0]]
	if !ok {
		return fmt.Errorf("unknown config key %q", args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	fmt.Println(entry.get(cfg))
	return nil
}
