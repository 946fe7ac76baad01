package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration. File values can be overridden by
// DATABASE_URL, JWT_SECRET and PORT for container deployments.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Booking  BookingConfig  `yaml:"booking"`
}

type ServerConfig struct {
	Port            string  `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	TokenTTLH int    `yaml:"token_ttl_hours"`
}

// BookingConfig carries the availability policy knobs. Both are business
// constants inherited from the product, not invariants.
type BookingConfig struct {
	FullyBookedHourThreshold int     `yaml:"fully_booked_hour_threshold"`
	FullDayPriceMultiplier   float64 `yaml:"full_day_price_multiplier"`
}

// Load reads the configuration from path. A missing file is not an error:
// defaults plus environment variables are enough to run locally.
func Load(path string) (*Config, error) {
	var cfg Config

	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 20
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 40
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 15
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "venuehub.db"
	}
	if cfg.Auth.TokenTTLH <= 0 {
		cfg.Auth.TokenTTLH = 24
	}
	if cfg.Booking.FullyBookedHourThreshold <= 0 {
		cfg.Booking.FullyBookedHourThreshold = 12
	}
	if cfg.Booking.FullDayPriceMultiplier <= 0 {
		cfg.Booking.FullDayPriceMultiplier = 10
	}

	return &cfg, nil
}
