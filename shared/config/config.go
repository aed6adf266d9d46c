// shared/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// TournamentServiceConfig holds configuration for the tournament service.
type TournamentServiceConfig struct {
	ListenAddr      string        `env:"LISTEN_ADDR" envDefault:":8080"`
	SeedData        bool          `env:"SEED_DATA" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
}

// LoadTournamentServiceConfig loads configuration from the environment. A
// .env file in the working directory is read first when present.
func LoadTournamentServiceConfig() (TournamentServiceConfig, error) {
	// Ignore the error: a missing .env file just means plain env vars.
	_ = godotenv.Load()

	var cfg TournamentServiceConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return cfg, nil
}
