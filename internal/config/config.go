// Package config loads process settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v6"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Run modes.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// Config holds every setting read from the environment.
type Config struct {
	// Mode is production or development
	Mode string `json:"mode,omitempty" env:"ENTITYLENS_ENV" envDefault:"development"`
	Host string `json:"host,omitempty" env:"HOST" envDefault:"0.0.0.0"`
	Port int    `json:"port,omitempty" env:"PORT" envDefault:"3000"`

	// NodeEnv sets Mode when ENTITYLENS_ENV is absent: "production" selects
	// production, any other value development
	NodeEnv string `json:"-" env:"NODE_ENV"`

	// APIKey is the default key for the direct-call provider
	APIKey string `json:"-" env:"API_KEY"`

	// StaticDir holds the built frontend served in production
	StaticDir string `json:"static_dir,omitempty" env:"STATIC_DIR" envDefault:"dist"`

	// DevServerURL is the frontend dev server proxied in development
	DevServerURL string `json:"dev_server_url,omitempty" env:"DEV_SERVER_URL"`

	// ProxyURL is the server base URL used by the CLI client
	ProxyURL string `json:"proxy_url,omitempty" env:"PROXY_URL" envDefault:"http://localhost:3000"`

	// AllowOrigins lists CORS origins, separated by |
	AllowOrigins []string `json:"allow_origins,omitempty" env:"CORS_ALLOW_ORIGINS" envSeparator:"|" envDefault:"*"`

	MetricsEnabled bool `json:"metrics_enabled,omitempty" env:"METRICS_ENABLED" envDefault:"false"`

	Log Log `json:"log,omitempty"`
}

// Log holds logging settings. An empty File logs to stderr.
type Log struct {
	Format     string `json:"format,omitempty" env:"ENTITYLENS_LOG_FORMAT"`
	Level      string `json:"level,omitempty" env:"ENTITYLENS_LOG_LEVEL"`
	File       string `json:"file,omitempty" env:"LOG_FILE"`
	MaxSize    int    `json:"max_size,omitempty" env:"LOG_MAX_SIZE" envDefault:"100"`
	MaxBackups int    `json:"max_backups,omitempty" env:"LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAge     int    `json:"max_age,omitempty" env:"LOG_MAX_AGE" envDefault:"28"`
	LocalTime  bool   `json:"local_time,omitempty" env:"LOG_LOCAL_TIME" envDefault:"true"`
}

// Load reads ./.env when present (without overriding variables already set)
// and parses the environment.
func Load() (Config, error) {
	filename, _ := filepath.Abs(filepath.Join(".", ".env"))
	if _, err := os.Stat(filename); err == nil {
		if err := godotenv.Load(filename); err != nil {
			return Config{}, fmt.Errorf("can't read %s: %w", filename, err)
		}
	}
	return parse()
}

// LoadFrom loads envfile, overriding variables already set, and parses the
// environment.
func LoadFrom(envfile string) (Config, error) {
	file, err := filepath.Abs(envfile)
	if err != nil {
		return Config{}, fmt.Errorf("can't resolve %s: %w", envfile, err)
	}
	if err := godotenv.Overload(file); err != nil {
		return Config{}, fmt.Errorf("can't read %s: %w", file, err)
	}
	return parse()
}

func parse() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("can't read config: %w", err)
	}
	if _, ok := os.LookupEnv("ENTITYLENS_ENV"); !ok && cfg.NodeEnv != "" {
		cfg.Mode = ModeDevelopment
		if cfg.NodeEnv == ModeProduction {
			cfg.Mode = ModeProduction
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env.Parse cannot.
func (c Config) Validate() error {
	var errs *multierror.Error
	if c.Mode != ModeProduction && c.Mode != ModeDevelopment {
		errs = multierror.Append(errs, fmt.Errorf("ENTITYLENS_ENV must be %q or %q, got %q", ModeProduction, ModeDevelopment, c.Mode))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = multierror.Append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	return errs.ErrorOrNil()
}

// IsProduction reports whether the production mode is set.
func (c Config) IsProduction() bool {
	return c.Mode == ModeProduction
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ApplyGinMode switches gin to release mode in production.
func (c Config) ApplyGinMode() {
	if c.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		return
	}
	gin.SetMode(gin.DebugMode)
}

// OpenLog returns the log destination: a rotating file when File is set,
// stderr otherwise. Closing the returned writer is the caller's job; closing
// stderr is a no-op.
func (l Log) OpenLog() (io.WriteCloser, error) {
	if l.File == "" {
		return nopCloser{os.Stderr}, nil
	}

	logfile, err := filepath.Abs(l.File)
	if err != nil {
		return nil, fmt.Errorf("can't resolve log file %s: %w", l.File, err)
	}
	if err := os.MkdirAll(filepath.Dir(logfile), 0o755); err != nil {
		return nil, fmt.Errorf("can't create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   logfile,
		MaxSize:    l.MaxSize, // megabytes
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge, // days
		LocalTime:  l.LocalTime,
	}, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
