package wordpress

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds the database connection settings. Credentials come from
// the environment rather than the config file.
type Config struct {
	User     string `env:"WP_USER"`
	Password string `env:"WP_PASSWORD"`
	Database string `env:"WP_DATABASE" envDefault:"wordpress"`
	Host     string `env:"WP_HOST" envDefault:"localhost"`
	Socket   string `env:"WP_SOCKET"`
}

// ConfigFromEnv reads the connection settings from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse wordpress environment: %w", err)
	}
	return cfg, nil
}
