package convcalc

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// SiteConfig holds all configuration for a convcalc site.
//
// Every field can be set from the environment, either with the CONVCALC_
// prefix (CONVCALC_SITE_URL) or without it (SITE_URL).
type SiteConfig struct {
	Name        string `envconfig:"SITE_NAME"`        // Site name (default "Unit Converter")
	URL         string `envconfig:"SITE_URL"`         // Canonical URL (default "http://localhost:3000")
	Description string `envconfig:"SITE_DESCRIPTION"` // Site description for RSS and meta tags
	Author      string `envconfig:"SITE_AUTHOR"`      // Default author for new posts

	Addr         string `envconfig:"ADDR"`          // Listen address (default ":3000")
	DatabasePath string `envconfig:"DATABASE_PATH"` // SQLite path (default "data/convcalc.db")

	UsageEnabled       bool   `envconfig:"USAGE_ENABLED" default:"true"` // Record converter page views
	UsageDatabasePath  string `envconfig:"USAGE_DATABASE_PATH"`          // default "data/usage.db"
	UsageRetentionDays int    `envconfig:"USAGE_RETENTION_DAYS"`         // default 365

	AdminPassword string `envconfig:"ADMIN_PASSWORD"` // Required: admin login password
	SessionSecret string `envconfig:"SESSION_SECRET"` // Required: session encryption secret
	CookieSecure  bool   `envconfig:"COOKIE_SECURE"`  // Set true for HTTPS

	AdsEnabled bool `envconfig:"ADS_ENABLED" default:"true"` // Render ad slot placeholders

	PostCacheTTL time.Duration `envconfig:"POST_CACHE_TTL"` // default 5m

	APIRate  float64 `envconfig:"API_RATE"`  // JSON API requests per second per IP (default 10)
	APIBurst int     `envconfig:"API_BURST"` // default 20

	LogLevel       string `envconfig:"LOG_LEVEL"` // debug, info, warn, error (default info)
	LogDevelopment bool   `envconfig:"LOG_DEV"`   // console encoder instead of JSON
}

// LoadConfig reads a SiteConfig from the environment.
func LoadConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := envconfig.Process("convcalc", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("convcalc: load config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Unit Converter"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Free online unit converters for weight, length, temperature, volume and more."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/convcalc.db"
	}
	if c.UsageDatabasePath == "" {
		c.UsageDatabasePath = "data/usage.db"
	}
	if c.UsageRetentionDays == 0 {
		c.UsageRetentionDays = 365
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.APIRate == 0 {
		c.APIRate = 10
	}
	if c.APIBurst == 0 {
		c.APIBurst = 20
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger replaces the logger built from LogLevel/LogDevelopment.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}
