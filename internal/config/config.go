package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Engine   EngineConfig   `mapstructure:"engine"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// CatalogConfig controls how the in-memory plant catalog is maintained.
type CatalogConfig struct {
	// RefreshIntervalMinutes sets how often the catalog is re-read from the
	// database in the background. Zero disables periodic refresh; the
	// reload endpoint still works.
	RefreshIntervalMinutes int `mapstructure:"refresh_interval_minutes" validate:"gte=0"`
}

// EngineConfig exposes the recommendation engine tunables. Zero values fall
// back to the engine's documented defaults, so a config file only needs to
// name the knobs it changes.
type EngineConfig struct {
	CanopyHeightFt     float64 `mapstructure:"canopy_height_ft" validate:"gte=0"`
	BaselineScore      float64 `mapstructure:"baseline_score" validate:"gte=0,lte=1"`
	RegionWeight       float64 `mapstructure:"region_weight" validate:"gte=0,lte=1"`
	NicheWeight        float64 `mapstructure:"niche_weight" validate:"gte=0,lte=1"`
	NitrogenFixerBonus float64 `mapstructure:"nitrogen_fixer_bonus" validate:"gte=0,lte=1"`
}
