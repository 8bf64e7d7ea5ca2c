package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the top-level tend configuration.
type Config struct {
	User      UserConfig      `toml:"user"`
	Defaults  DefaultsConfig  `toml:"defaults"`
	Analytics AnalyticsConfig `toml:"analytics"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

// DefaultsConfig holds defaults applied when flags are omitted.
type DefaultsConfig struct {
	// Period is the periodicity assumed by `tend add` when --period is not
	// given: daily, weekly, or monthly.
	Period string `toml:"period"`
}

// AnalyticsConfig controls anonymous usage analytics.
type AnalyticsConfig struct {
	// Enabled controls whether anonymous analytics are sent.
	// Defaults to true when not set in config (opt-out model).
	Enabled *bool `toml:"enabled,omitempty"`
}

// IsEnabled returns whether analytics are enabled.
// Treats nil (missing from config) as true — opt-out, not opt-in.
func (a AnalyticsConfig) IsEnabled() bool {
	if a.Enabled == nil {
		return true
	}
	return *a.Enabled
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	CacheDir   string
	StateDir   string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	cacheDir := envOr("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	stateDir := envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	tendConfig := filepath.Join(configDir, "tend")
	tendData := filepath.Join(dataDir, "tend")

	return Paths{
		ConfigDir:  tendConfig,
		DataDir:    tendData,
		CacheDir:   filepath.Join(cacheDir, "tend"),
		StateDir:   filepath.Join(stateDir, "tend"),
		ConfigFile: filepath.Join(tendConfig, "config.toml"),
		DBFile:     filepath.Join(tendData, "tend.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	dirs := []string{p.ConfigDir, p.DataDir, p.CacheDir, p.StateDir}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := &Config{}

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Defaults.Period == "" {
		cfg.Defaults.Period = "daily"
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if tend has been set up.
func Initialized() bool {
	paths := GetPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}

func defaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Period: "daily",
		},
		Analytics: AnalyticsConfig{
			Enabled: BoolPtr(true),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
