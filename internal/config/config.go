package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full environment surface of the server.
type Config struct {
	Port          string `envconfig:"PORT" default:"5000"`
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"http://localhost:5173"`
	Debug         bool   `envconfig:"DEBUG" default:"false"`

	// DatabaseURL switches the catalog and account stores from process
	// memory to Postgres. Empty means in-memory with the seed catalog.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"false"`
	MetricsToken   string `envconfig:"METRICS_TOKEN"`
}

func Load() (Config, error) {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
