package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the kconfparse CLI configuration
type Config struct {
	BaseDir string `mapstructure:"base_dir"`
	Output  string `mapstructure:"output"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load loads the configuration from kconfparse.yml or kconfparse.yaml
// in the current directory, falling back to defaults when no file
// exists. Environment variables override file values.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("base_dir", ".")
	v.SetDefault("output", "text")
	v.SetDefault("verbose", false)

	// Set config name and paths
	v.SetConfigName("kconfparse")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.SetEnvPrefix("KCONFPARSE")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	switch config.Output {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid output format %q (expected \"text\" or \"json\")", config.Output)
	}
}
