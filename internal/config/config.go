package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		Driver string `yaml:"driver" env:"STORAGE_DRIVER"` // "file" or "sqlite"
		Path   string `yaml:"path" env:"STORAGE_PATH"`     // data directory (file) or db file (sqlite)
	} `yaml:"storage"`

	Admin struct {
		Email    string `yaml:"email" env:"ADMIN_EMAIL"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	} `yaml:"admin"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus env cover the demo setup
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Storage.Driver = "file"
	config.Storage.Path = "data"

	// Demo credentials carried over from the original console; override in env
	config.Admin.Email = "admin@example.com"
	config.Admin.Password = "admin123"

	config.JWT.Secret = "campus-dev-secret"
	config.JWT.AccessTokenExpiration = "12h"
	config.JWT.Issuer = "campus.dishabharti.edu"

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Storage.Driver {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unsupported storage driver %q (want file or sqlite)", config.Storage.Driver)
	}

	if config.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}

	if config.Admin.Email == "" || config.Admin.Password == "" {
		return fmt.Errorf("admin credentials are required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	return nil
}
