// Package config loads testlens settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/abhisek/testlens/internal/llm"
)

// Config is read from TESTLENS_* variables. A .env file in the working
// directory is loaded first; variables already set in the process win.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `env:"DB"`

	// Endpoint is the analysis backend root; the client appends /api.
	Endpoint string        `env:"ENDPOINT" envDefault:"http://localhost:8000"`
	Token    string        `env:"TOKEN"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`

	LogMode string `env:"LOG_MODE" envDefault:"quiet"`

	// AdviceConcurrency caps parallel LLM calls when advising on items.
	AdviceConcurrency int `env:"ADVICE_CONCURRENCY" envDefault:"4"`

	LLM llm.Config `envPrefix:"LLM_"`
}

// Load reads the dotenv files (".env" when none are given) and parses the
// environment. Missing dotenv files are ignored.
func Load(dotenv ...string) (Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "TESTLENS_"}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings every command relies on. The endpoint and
// LLM settings are checked only by commands that use them.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.AdviceConcurrency < 1 {
		return fmt.Errorf("advice concurrency must be at least 1, got %d", c.AdviceConcurrency)
	}
	return nil
}

// ValidateEndpoint checks that the backend endpoint is an absolute URL.
func (c Config) ValidateEndpoint() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: set TESTLENS_ENDPOINT or --endpoint", c.Endpoint)
	}
	return nil
}
