// Package config loads server settings from an optional YAML file, with
// environment variables taking precedence.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type ServerConfig struct {
	Addr                   string `yaml:"addr"`
	ReadTimeoutSeconds     int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds    int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds     int    `yaml:"idle_timeout_seconds"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSeconds) * time.Second
}

func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// RedisConfig selects the cache backend: an empty Addr keeps the in-memory
// cache, a non-empty one switches to Redis.
type RedisConfig struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	Server         ServerConfig    `yaml:"server"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
	Redis          RedisConfig     `yaml:"redis"`
	CurrencySymbol string          `yaml:"currency_symbol"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:                   ":8080",
			ReadTimeoutSeconds:     15,
			WriteTimeoutSeconds:    15,
			IdleTimeoutSeconds:     60,
			ShutdownTimeoutSeconds: 10,
		},
		RateLimit: RateLimitConfig{
			Requests:      5,
			WindowSeconds: 60,
		},
		CurrencySymbol: "₹",
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides (PORT, REDIS_ADDR, CURRENCY_SYMBOL). A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, err
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if symbol := os.Getenv("CURRENCY_SYMBOL"); symbol != "" {
		cfg.CurrencySymbol = symbol
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr must not be empty")
	}
	if c.Server.ReadTimeoutSeconds <= 0 || c.Server.WriteTimeoutSeconds <= 0 ||
		c.Server.IdleTimeoutSeconds <= 0 || c.Server.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate limit requests and window must be positive")
	}
	return nil
}
