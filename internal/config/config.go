package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration from environment variables with an
// optional .env file.
//
// CORS_ALLOW_ORIGINS defaults to "*", which cannot be combined with
// credentials: browsers then never send the session cookie cross-origin
// and every remote request gets a fresh session. The wildcard is for
// same-origin deployments (storefront served behind the same host); a
// cross-origin deployment must list its origins explicitly so the
// server can allow credentials.
type Config struct {
	HTTPAddr         string
	UpstreamBaseURL  string
	UpstreamTimeout  time.Duration
	ShutdownTimeout  time.Duration
	SessionTTL       time.Duration
	SessionSweep     time.Duration
	CheckoutRedirect time.Duration
	CORSAllowOrigins []string
	LogLevel         string
}

// Load reads configuration with defaults, overridden by the environment
// and an optional .env file. The upstream base URL is the only required
// setting.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("env")
	v.SetConfigName(".env")
	v.AddConfigPath(".")

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("UPSTREAM_BASE_URL", "")
	v.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 15)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("SESSION_TTL_MINUTES", 120)
	v.SetDefault("SESSION_SWEEP_MINUTES", 5)
	v.SetDefault("CHECKOUT_REDIRECT_DELAY_MS", 2000)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing .env is fine; env vars carry the config then.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		HTTPAddr:         v.GetString("HTTP_ADDR"),
		UpstreamBaseURL:  v.GetString("UPSTREAM_BASE_URL"),
		UpstreamTimeout:  time.Duration(v.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		ShutdownTimeout:  time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		SessionTTL:       time.Duration(v.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
		SessionSweep:     time.Duration(v.GetInt("SESSION_SWEEP_MINUTES")) * time.Minute,
		CheckoutRedirect: time.Duration(v.GetInt("CHECKOUT_REDIRECT_DELAY_MS")) * time.Millisecond,
		CORSAllowOrigins: splitOrigins(v.GetString("CORS_ALLOW_ORIGINS")),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}

	if cfg.UpstreamBaseURL == "" {
		return nil, fmt.Errorf("UPSTREAM_BASE_URL is required")
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
