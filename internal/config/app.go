package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds process settings shared by the CLI commands.
// Values come from the environment; cobra flags override them.
type AppConfig struct {
	Endpoint    string        `env:"DINORUN_ENDPOINT"     envDefault:"http://localhost:3000/api/scores"`
	Offline     bool          `env:"DINORUN_OFFLINE"`
	DBPath      string        `env:"DINORUN_DB"           envDefault:"~/.arcade/dinorun.db"`
	HTTPTimeout time.Duration `env:"DINORUN_HTTP_TIMEOUT" envDefault:"5s"`
	APIAddr     string        `env:"DINORUN_API_ADDR"     envDefault:":3000"`
	SSHAddr     string        `env:"DINORUN_SSH_ADDR"     envDefault:":23234"`
	LogLevel    string        `env:"DINORUN_LOG_LEVEL"    envDefault:"info"`
	LogFile     string        `env:"DINORUN_LOG_FILE"     envDefault:"~/.arcade/dinorun.log"`
	PlayerName  string        `env:"DINORUN_PLAYER"`
}

// LoadAppConfig reads AppConfig from the environment.
func LoadAppConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
