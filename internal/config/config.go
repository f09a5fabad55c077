package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string        `mapstructure:"PORT" validate:"required,numeric"`
	Env            string        `mapstructure:"ENV" validate:"oneof=development test production"`
	LogLevel       string        `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
	BaseURL        string        `mapstructure:"BASE_URL" validate:"omitempty,url"`
	ListSize       int           `mapstructure:"LIST_SIZE" validate:"gte=1,lte=1000"`
	RandomSeed     int64         `mapstructure:"RANDOM_SEED"`
	RateLimitRPS   float64       `mapstructure:"RATE_LIMIT_RPS" validate:"gt=0"`
	RateLimitBurst int           `mapstructure:"RATE_LIMIT_BURST" validate:"gte=1"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT" validate:"gte=0"`
}

var keys = []string{
	"PORT",
	"ENV",
	"LOG_LEVEL",
	"BASE_URL",
	"LIST_SIZE",
	"RANDOM_SEED",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"REQUEST_TIMEOUT",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LIST_SIZE", 10)
	v.SetDefault("RANDOM_SEED", 0)
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("REQUEST_TIMEOUT", "30s")

	// Bind env vars explicitly so Unmarshal picks them up
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// A missing .env file is fine
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%s/fhir", cfg.Port)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Level parses LOG_LEVEL, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Validate checks field constraints and reports the first failing key.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid %s: failed %q constraint (value %v)", tagFor(fe.StructField()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// tagFor maps a struct field back to its environment key.
func tagFor(field string) string {
	switch field {
	case "Port":
		return "PORT"
	case "Env":
		return "ENV"
	case "LogLevel":
		return "LOG_LEVEL"
	case "BaseURL":
		return "BASE_URL"
	case "ListSize":
		return "LIST_SIZE"
	case "RateLimitRPS":
		return "RATE_LIMIT_RPS"
	case "RateLimitBurst":
		return "RATE_LIMIT_BURST"
	case "RequestTimeout":
		return "REQUEST_TIMEOUT"
	}
	return field
}
