package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	GroqAPIKey string `env:"GROQ_API_KEY,required,notEmpty"`
	GroqAPIURL string `env:"GROQ_API_URL" envDefault:"https://api.groq.com/openai/v1"`
	Model      string `env:"MINDFULCHAT_MODEL" envDefault:"llama-3.3-70b-versatile"`

	// Local store
	DataDir string `env:"MINDFULCHAT_DATA_DIR"`

	// Remote call bound
	RequestTimeout time.Duration `env:"MINDFULCHAT_REQUEST_TIMEOUT" envDefault:"30s"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		cfg.DataDir = filepath.Join(base, "mindfulchat")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	return cfg, nil
}

// StorePath is the location of the local sqlite store.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "mindfulchat.db")
}
