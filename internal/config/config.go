package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config holds application configuration, bound from environment variables.
type Config struct {
	SpannerDatabase string `envconfig:"SPANNER_DATABASE" default:"projects/test-project/instances/dev-instance/databases/catalog-db"`
	HTTPPort        string `envconfig:"HTTP_PORT"        default:"8080"`
	LogLevel        string `envconfig:"LOG_LEVEL"        default:"info"`
}

// Load reads an optional .env file and then binds the environment.
func Load(logger *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		}
	} else {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	return &cfg, nil
}
