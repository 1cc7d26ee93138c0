package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFilename is the name of the config file
const ConfigFilename = "config"

// ConfigType is the type of config file (yaml, json, toml)
const ConfigType = "yaml"

// InitViper initializes Viper with proper search paths and defaults
// Priority (highest to lowest):
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (JOBCOST_*)
// 3. User config file (~/.config/jobcost/config.yaml)
// 4. System config file (/etc/jobcost/config.yaml)
// 5. Defaults
func InitViper() error {
	viper.SetConfigName(ConfigFilename)
	viper.SetConfigType(ConfigType)

	// Set config search paths (order matters)
	// User config (highest priority)
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(userConfigDir, "jobcost"))
	}

	// Home directory fallback
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".jobcost"))
	}

	// System-wide config (lower priority)
	viper.AddConfigPath("/etc/jobcost")

	// Current directory (for development)
	viper.AddConfigPath(".")

	// Environment variables; nested keys map to underscores
	// (cost.warn_threshold -> JOBCOST_COST_WARN_THRESHOLD)
	viper.SetEnvPrefix("JOBCOST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults (lowest priority)
	setDefaults()

	// Read config file (non-fatal if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults apply
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// setDefaults sets default values for all config keys
func setDefaults() {
	viper.SetDefault("report.color", true)
	viper.SetDefault("cost.warn_threshold", 10000.0)
	viper.SetDefault("cost.market_price_nok", 0.13)

	// Per-queue memory cost factor overrides; empty = built-in factors
	viper.SetDefault("queues", map[string]float64{})
}

// LoadFromViper copies resolved viper values into the Global config.
// Call after InitViper; command-line flags are applied on top by cmd.
func LoadFromViper() {
	Global.Color = viper.GetBool("report.color")
	Global.WarnThreshold = viper.GetFloat64("cost.warn_threshold")
	Global.MarketPriceNOK = viper.GetFloat64("cost.market_price_nok")

	factors := map[string]float64{}
	for name, raw := range viper.GetStringMap("queues") {
		if f, ok := queueFactor(raw); ok && f > 0 {
			factors[name] = f
		}
	}
	Global.QueueFactors = factors
}

// queueFactor reads a per-queue override in either config shape: a bare
// number (queues.normal: 0.5) or a nested map with a mem_factor key
// (queues.normal.mem_factor: 0.5).
func queueFactor(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case map[string]interface{}:
		return queueFactor(v["mem_factor"])
	}
	return 0, false
}

// WriteDefaultConfig writes the resolved configuration to path, creating
// parent directories as needed.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return viper.WriteConfigAs(path)
}

// GetUserConfigPath returns the path of the user config file, whether or not
// it exists.
func GetUserConfigPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "jobcost", ConfigFilename+"."+ConfigType), nil
}
