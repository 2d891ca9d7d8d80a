// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the application configuration: logging, the package catalog
// location and the scene defaults. Per-package resource documents (colors,
// sizes, positions, prototypes, setups, robots) live behind the catalog, not
// here.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Scene   SceneConfig   `mapstructure:"scene" yaml:"scene"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// CatalogConfig locates the package catalog document.
type CatalogConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// SceneConfig carries the position factory defaults applied when a pose or
// pose entry leaves its rotational components unspecified.
type SceneConfig struct {
	DefaultRoll  float64 `mapstructure:"default_roll" yaml:"default_roll"`
	DefaultPitch float64 `mapstructure:"default_pitch" yaml:"default_pitch"`
	DefaultYaw   float64 `mapstructure:"default_yaw" yaml:"default_yaw"`
}

// SetDefaults initializes default values for various configuration
// parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "simscene")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("logger.compress", true)

	// -- Catalog --
	v.SetDefault("catalog.path", "config/catalog.yaml")

	// -- Scene --
	v.SetDefault("scene.default_roll", 0.0)
	v.SetDefault("scene.default_pitch", 0.0)
	v.SetDefault("scene.default_yaw", 0.0)
}

// NewDefaultConfig creates a new configuration struct populated with default
// values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper creates a new configuration instance from a viper
// object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is a required configuration field")
	}
	if c.Logger.MaxSize < 0 || c.Logger.MaxBackups < 0 || c.Logger.MaxAge < 0 {
		return fmt.Errorf("logger rotation settings must not be negative")
	}
	return nil
}
