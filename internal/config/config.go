package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Layout   LayoutConfig
	Station  StationConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LayoutConfig locates the declarative widget resources. The directory is
// explicit configuration rather than something derived from the binary's
// install location.
type LayoutConfig struct {
	Dir string
}

// StationConfig identifies the operator.
type StationConfig struct {
	Callsign string
	Locator  string
}

// Load reads configuration from file and env. Env var overrides use prefix QSOLOG_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "qsolog", "qsolog.db"))
	v.SetDefault("layout.dir", "layouts")
	v.SetDefault("station.callsign", "")
	v.SetDefault("station.locator", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("QSOLOG_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "qsolog"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QSOLOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed.
func Save(cfg Config) error {
	path := os.Getenv("QSOLOG_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "qsolog", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("layout.dir", cfg.Layout.Dir)
	v.Set("station.callsign", cfg.Station.Callsign)
	v.Set("station.locator", cfg.Station.Locator)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LayoutResource returns the path of the main layout file under the
// configured layout directory.
func (c Config) LayoutResource() string {
	return filepath.Join(c.Layout.Dir, "qsolog.toml")
}
