// Package config loads the landing site configuration from the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string        `env:"LANDING_HTTP_ADDR" envDefault:":4002"`
	LogLevel        string        `env:"LANDING_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LANDING_LOG_FORMAT" envDefault:"text"`
	ContentFile     string        `env:"LANDING_CONTENT_FILE"`
	DBPath          string        `env:"LANDING_DB_PATH" envDefault:"landing.db"`
	SessionLifetime time.Duration `env:"LANDING_SESSION_LIFETIME" envDefault:"24h"`
	SecureCookies   bool          `env:"LANDING_SECURE_COOKIES" envDefault:"false"`
	FormRate        float64       `env:"LANDING_FORM_RATE" envDefault:"10"` // per minute per client
	FormBurst       int           `env:"LANDING_FORM_BURST" envDefault:"5"`
	DraftRate       float64       `env:"LANDING_DRAFT_RATE" envDefault:"60"` // per minute per client
	DraftBurst      int           `env:"LANDING_DRAFT_BURST" envDefault:"20"`
	ShutdownTimeout time.Duration `env:"LANDING_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Mailgun         Mailgun
}

type Mailgun struct {
	Domain     string `env:"MAILGUN_DOMAIN"`
	APIKey     string `env:"MAILGUN_API_KEY"`
	From       string `env:"MAILGUN_FROM"`
	SalesEmail string `env:"LANDING_SALES_EMAIL"`
}

// Load reads envFile into the environment, if it exists, and parses the
// environment into a Config. Variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RegisterFlags binds command line overrides to cfg.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.HTTPAddr, "addr", c.HTTPAddr, "listen address")
	fs.StringVar(&c.ContentFile, "content", c.ContentFile, "YAML file with content overrides")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "sqlite database path")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

func (c *Config) validate() error {
	var errs []error
	if c.FormRate <= 0 {
		errs = append(errs, errors.New("LANDING_FORM_RATE must be positive"))
	}
	if c.FormBurst < 1 {
		errs = append(errs, errors.New("LANDING_FORM_BURST must be at least 1"))
	}
	if c.DraftRate <= 0 {
		errs = append(errs, errors.New("LANDING_DRAFT_RATE must be positive"))
	}
	if c.DraftBurst < 1 {
		errs = append(errs, errors.New("LANDING_DRAFT_BURST must be at least 1"))
	}
	if c.SessionLifetime <= 0 {
		errs = append(errs, errors.New("LANDING_SESSION_LIFETIME must be positive"))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LANDING_LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}
