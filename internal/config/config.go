package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains application configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	Database Database `envPrefix:"DATABASE_"`
}

// Database contains database connection parameters.
type Database struct {
	Path string `env:"PATH" envDefault:"users.db"`
}

// NewConfig loads configuration from environment variables, with an
// optional .env file in the working directory providing defaults.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
