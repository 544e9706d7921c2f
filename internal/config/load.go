package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "MEMORY"

// defaults lists every configuration key with its default value
var defaults = map[string]interface{}{
	"server.port":                 8080,
	"server.log_level":            "info",
	"server.shutdown_timeout":     "10s",
	"auth.token_lifetime_minutes": 720,
	"game.max_games":              1000,
	"game.idle_timeout":           "30m",
	"game.reap_interval":          "1m",
	"game.settle_delay":           "300ms",
	"game.match_delay":            "500ms",
	"game.mismatch_delay":         "2s",
	"game.complete_delay":         "400ms",
	"game.tick_interval":          "1s",
	"game.shuffle_seed":           0,

	"game.progression.easy_initial":   1,
	"game.progression.medium_initial": 3,
	"game.progression.hard_initial":   4,
	"game.progression.easy_final":     4,
	"game.progression.medium_final":   10,
	"game.progression.hard_final":     10,
}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file.
// With an empty configPath, config.yaml is looked up in the working directory
// and skipped when absent.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	// Configure environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without a default are only picked up from the environment when bound
	if err := v.BindEnv("auth.jwt_secret"); err != nil {
		return nil, fmt.Errorf("error binding environment variable for auth.jwt_secret: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks a configuration against its validation rules
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
