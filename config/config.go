package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration read from the environment
type Config struct {
	Env  string `env:"ENV"  envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST"`
	DBPort      string `env:"DB_PORT"     envDefault:"5432"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"`
	DBSSLMode   string `env:"DB_SSLMODE"  envDefault:"disable"`

	FiguredataPath string `env:"FIGUREDATA_PATH"`
	Region         string `env:"HABBO_REGION" envDefault:"com.br"`

	OfficialSourceURL string        `env:"OFFICIAL_SOURCE_URL"`
	MirrorASourceURL  string        `env:"MIRROR_A_SOURCE_URL"`
	MirrorBSourceURL  string        `env:"MIRROR_B_SOURCE_URL"`
	CredentialsPath   string        `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	SourceTimeout     time.Duration `env:"SOURCE_TIMEOUT"       envDefault:"15s"`
	UnionColors       bool          `env:"CATALOG_UNION_COLORS" envDefault:"false"`

	ProbeTimeout      time.Duration `env:"PROBE_TIMEOUT"       envDefault:"5s"`
	ProbeBackend      string        `env:"PROBE_BACKEND"       envDefault:"http"`
	ChromePath        string        `env:"CHROME_PATH"`
	WarmupWorkers     int           `env:"WARMUP_WORKERS"      envDefault:"8"`
	ThumbnailCacheDir string        `env:"THUMBNAIL_CACHE_DIR" envDefault:"cache/thumbnails"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}

	cfg.Port = strings.TrimPrefix(cfg.Port, ":")
	cfg.ProbeBackend = strings.ToLower(strings.TrimSpace(cfg.ProbeBackend))
	if cfg.ProbeBackend != "http" && cfg.ProbeBackend != "chrome" {
		return nil, fmt.Errorf("PROBE_BACKEND must be http or chrome, got %q", cfg.ProbeBackend)
	}
	if cfg.WarmupWorkers <= 0 {
		return nil, fmt.Errorf("WARMUP_WORKERS must be positive, got %d", cfg.WarmupWorkers)
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DatabaseDSN returns DATABASE_URL or builds a connection string from DB_* variables
func (c *Config) DatabaseDSN() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}
	if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode), nil
}

// UsesDrive reports whether any listing source is a Google Drive folder
func (c *Config) UsesDrive() bool {
	for _, location := range []string{c.OfficialSourceURL, c.MirrorASourceURL, c.MirrorBSourceURL} {
		if strings.HasPrefix(location, "drive://") {
			return true
		}
	}
	return false
}
