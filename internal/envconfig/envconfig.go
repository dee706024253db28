// Package envconfig reads command defaults from the environment.
package envconfig

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Env holds the environment-provided defaults. Command-line flags override them.
type Env struct {
	ConfigPath string `env:"SENTENIZER_CONFIG"`
	DBPath     string `env:"SENTENIZER_DB"`
	Window     int    `env:"SENTENIZER_WINDOW" envDefault:"0"`
	Format     string `env:"SENTENIZER_FORMAT" envDefault:"text"`
	Debug      bool   `env:"SENTENIZER_DEBUG"`
}

// Load reads a .env file from the working directory when one exists and
// then parses the environment. Variables already set take precedence over
// the file.
func Load() (*Env, error) {
	_ = godotenv.Load()

	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
