package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by Load, e.g.
// GUILD_SERVER_PORT or GUILD_DATABASE_URL.
const envPrefix = "GUILD"

// Load reads configuration from environment variables and, when present, a
// guild.yaml file in the working directory or /etc/guild-api. Environment
// variables take precedence over file values. Returns a populated Config or
// an error describing what failed to load or validate.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("guild")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/guild-api")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; the environment covers it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers defaults for everything a bare environment should
// still be able to run with, except the database URL, which has no safe
// default.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	// Registered empty so AutomaticEnv can bind GUILD_DATABASE_URL;
	// validation rejects the empty value if nothing supplies it.
	v.SetDefault("database.url", "")
	v.SetDefault("catalog.refresh_interval_minutes", 0)
	v.SetDefault("engine.canopy_height_ft", 0)
	v.SetDefault("engine.baseline_score", 0)
	v.SetDefault("engine.region_weight", 0)
	v.SetDefault("engine.niche_weight", 0)
	v.SetDefault("engine.nitrogen_fixer_bonus", 0)
}
