// Package config loads postview settings from defaults, the YAML config
// file, environment variables, and CLI flags, in that order.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/posts"
)

// Environment variable names.
const (
	EnvHome         = "POSTVIEW_HOME"
	EnvEndpoint     = "POSTVIEW_ENDPOINT"
	EnvLogLevel     = "POSTVIEW_LOG_LEVEL"
	EnvLogFormat    = "POSTVIEW_LOG_FORMAT"
	EnvLoadingDelay = "POSTVIEW_LOADING_DELAY"
)

const (
	configFileName = "config.yaml"
	configDirName  = ".postview"
	logDirName     = "logs"
	logFileName    = "postview.log"

	defaultLoadingDelay = 2250 * time.Millisecond
	defaultRowHeight    = 5
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete postview configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	View    ViewConfig    `yaml:"view"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig controls the posts fetch.
type APIConfig struct {
	Endpoint     string        `yaml:"endpoint"`
	Timeout      time.Duration `yaml:"timeout"`
	LoadingDelay time.Duration `yaml:"loading_delay"`
}

// ViewConfig controls the posts screen.
type ViewConfig struct {
	DefaultSort string `yaml:"default_sort"`
	RowHeight   int    `yaml:"row_height"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns a Config populated with built-in defaults.
func New() *Config {
	logFile := ""
	if dir, err := GetConfigDir(); err == nil {
		logFile = filepath.Join(dir, logDirName, logFileName)
	}

	return &Config{
		API: APIConfig{
			Endpoint:     posts.DefaultEndpoint,
			Timeout:      posts.DefaultTimeout,
			LoadingDelay: defaultLoadingDelay,
		},
		View: ViewConfig{
			DefaultSort: string(pagination.DefaultSortMethod),
			RowHeight:   defaultRowHeight,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			File:   logFile,
		},
	}
}

// Load builds a Config from defaults, the config file at path, and the
// environment. An empty path selects $POSTVIEW_HOME/config.yaml; a missing
// default file is not an error, a missing explicit file is.
func Load(path string) (*Config, error) {
	cfg := New()

	explicit := path != ""
	if !explicit {
		dir, err := GetConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, configFileName)
	}

	if _, err := os.Stat(path); err == nil {
		if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
			return nil, mergeErr
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvEndpoint); v != "" {
		c.API.Endpoint = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := getenv(EnvLoadingDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvLoadingDelay, err)
		}
		c.API.LoadingDelay = d
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: api.endpoint: %w", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api.endpoint must be an absolute http(s) URL, got %q", ErrInvalidConfig, c.API.Endpoint)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: api.timeout must be positive, got %s", ErrInvalidConfig, c.API.Timeout)
	}
	if c.API.LoadingDelay < 0 {
		return fmt.Errorf("%w: api.loading_delay must not be negative, got %s", ErrInvalidConfig, c.API.LoadingDelay)
	}
	if c.View.RowHeight < 1 {
		return fmt.Errorf("%w: view.row_height must be at least 1, got %d", ErrInvalidConfig, c.View.RowHeight)
	}
	if _, err := pagination.ParseSortMethod(c.View.DefaultSort); err != nil {
		return fmt.Errorf("%w: view.default_sort: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// SortMethod returns the configured default sort, or the built-in default
// when the value does not parse.
func (c *Config) SortMethod() pagination.SortMethod {
	m, err := pagination.ParseSortMethod(c.View.DefaultSort)
	if err != nil {
		return pagination.DefaultSortMethod
	}
	return m
}
