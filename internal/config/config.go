package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ecruz165/react-webpack-scaffold/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyPackageManager = "package_manager"
	KeySkipInstall    = "skip_install"
	KeyNoColor        = "no_color"
)

// DefaultPackageManager is used when neither a flag, env var nor config file selects one.
const DefaultPackageManager = "yarn"

var knownKeys = map[string]bool{
	KeyPackageManager: true,
	KeySkipInstall:    true,
	KeyNoColor:        true,
}

// Settings is the resolved view of the configuration for a single run.
type Settings struct {
	PackageManager string
	SkipInstall    bool
	NoColor        bool
}

// Dir returns the path to the config directory. RWS_HOME overrides the
// default of ~/.react-webpack-scaffold.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetDefault(KeyPackageManager, DefaultPackageManager)
	viper.SetDefault(KeySkipInstall, false)
	viper.SetDefault(KeyNoColor, false)

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the settings resolved from flags, env, config file and defaults.
func Current() Settings {
	return Settings{
		PackageManager: viper.GetString(KeyPackageManager),
		SkipInstall:    viper.GetBool(KeySkipInstall),
		NoColor:        viper.GetBool(KeyNoColor),
	}
}

// Keys returns the recognized configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is a recognized configuration key.
func IsKnownKey(key string) bool {
	return knownKeys[key]
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file. Only values
// already in the file and the new one are written; env vars and flags stay
// out of it.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
