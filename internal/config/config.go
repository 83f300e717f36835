// Package config loads xrandroll settings from ~/.xrandroll.yaml, the
// environment (XRANDROLL_*), and command-line flags bound by cmd.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Keys
const (
	KeyXrandrPath    = "xrandr_path"
	KeyFormat        = "format"
	KeyLogLevel      = "log_level"
	KeyPlaceholderMM = "placeholder_mm"
	KeyProfilesDir   = "profiles_dir"
	KeyCacheTTL      = "cache_ttl"
	KeySnapThreshold = "snap_threshold"
)

// EnvPrefix is prepended to upper-cased keys when reading the environment.
const EnvPrefix = "XRANDROLL"

// ConfigName is the base name of the config file in the home directory.
const ConfigName = ".xrandroll"

// Config is the resolved configuration.
type Config struct {
	XrandrPath    string        `yaml:"xrandr_path" json:"xrandr_path"`
	Format        string        `yaml:"format" json:"format"`
	LogLevel      string        `yaml:"log_level" json:"log_level"`
	PlaceholderMM int           `yaml:"placeholder_mm" json:"placeholder_mm"`
	ProfilesDir   string        `yaml:"profiles_dir" json:"profiles_dir"`
	CacheTTL      time.Duration `yaml:"cache_ttl" json:"cache_ttl"`
	SnapThreshold int           `yaml:"snap_threshold" json:"snap_threshold"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyXrandrPath, "xrandr")
	v.SetDefault(KeyFormat, "yaml")
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyPlaceholderMM, 100)
	v.SetDefault(KeyProfilesDir, "~/.xrandroll/profiles")
	v.SetDefault(KeyCacheTTL, "2s")
	v.SetDefault(KeySnapThreshold, 0)
}

// Init prepares v: defaults, environment binding and the config file
// location. An explicit file overrides the home directory lookup. A missing
// default config file is not an error; a missing explicit one is.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return fmt.Errorf("config file %s: %w", file, err)
		}
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("locating home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(ConfigName) // .yaml is implicit
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if file == "" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Load resolves the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	dir, err := homedir.Expand(v.GetString(KeyProfilesDir))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyProfilesDir, err)
	}
	c := &Config{
		XrandrPath:    v.GetString(KeyXrandrPath),
		Format:        v.GetString(KeyFormat),
		LogLevel:      v.GetString(KeyLogLevel),
		PlaceholderMM: v.GetInt(KeyPlaceholderMM),
		ProfilesDir:   filepath.Clean(dir),
		CacheTTL:      v.GetDuration(KeyCacheTTL),
		SnapThreshold: v.GetInt(KeySnapThreshold),
	}
	if c.PlaceholderMM <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", KeyPlaceholderMM, c.PlaceholderMM)
	}
	if c.SnapThreshold < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", KeySnapThreshold, c.SnapThreshold)
	}
	return c, nil
}
