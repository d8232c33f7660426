// Package config loads issuetracker settings from a YAML or TOML file,
// a .env file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables recognised by Load
const (
	EnvPort        = "PORT"
	EnvDatabaseURL = "DATABASE_URL"
	EnvAPIBase     = "API_BASE"
	EnvLogLevel    = "ISSUETRACKER_LOG_LEVEL"
	EnvCORSOrigins = "ISSUETRACKER_CORS_ORIGINS"
	EnvThemeFile   = "ISSUETRACKER_THEME_FILE"
)

// Defaults
const (
	DefaultPort            = 4000
	DefaultAPIBase         = "http://localhost:4000/api"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultClientTimeout   = 15 * time.Second
	DefaultLogLevel        = "info"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig   `yaml:"server" toml:"server"`
	Database    DatabaseConfig `yaml:"database" toml:"database"`
	Client      ClientConfig   `yaml:"client" toml:"client"`
	Log         LogConfig      `yaml:"log" toml:"log"`
	KeyMappings KeyMappings    `yaml:"key_mappings" toml:"key_mappings"`
	Theme       Theme          `yaml:"theme" toml:"theme"`
}

// ServerConfig configures the API listener
type ServerConfig struct {
	Host            string        `yaml:"host" toml:"host"`
	Port            int           `yaml:"port" toml:"port"`
	CORSOrigins     []string      `yaml:"cors_origins" toml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// DatabaseConfig configures the issue store
type DatabaseConfig struct {
	// DSN is a SQLite path or URI; empty selects the default data directory
	DSN string `yaml:"dsn" toml:"dsn"`
}

// ClientConfig configures the UIs and CLI commands that talk to the API
type ClientConfig struct {
	APIBase string        `yaml:"api_base" toml:"api_base"`
	Timeout time.Duration `yaml:"timeout" toml:"timeout"`
}

// LogConfig configures slog
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	// File overrides the log destination; empty means the per-command default
	File string `yaml:"file" toml:"file"`
}

// Addr returns the listen address for the API server
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// Default returns a fully populated default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from path, or from the user's config directory
// when path is empty. A missing file yields defaults. A .env file in the
// working directory is loaded first and never overrides variables that are
// already set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	explicit := path != ""
	if !explicit {
		defaultPath, err := getConfigPath()
		if err == nil {
			path = defaultPath
		}
	}

	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(path, data, config); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// No config file: defaults only
		default:
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	loadThemeFile(config)

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Write encodes the configuration as YAML
func (c *Config) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return err
	}
	return encoder.Close()
}

func decode(path string, data []byte, config *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, config)
	}
	return yaml.Unmarshal(data, config)
}

// loadThemeFile merges the theme from ISSUETRACKER_THEME_FILE if set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme Theme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() error {
	if raw := os.Getenv(EnvPort); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid %s %q", EnvPort, raw)
		}
		c.Server.Port = port
	}
	if dsn := os.Getenv(EnvDatabaseURL); dsn != "" {
		c.Database.DSN = dsn
	}
	if base := os.Getenv(EnvAPIBase); base != "" {
		c.Client.APIBase = base
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
	if origins := os.Getenv(EnvCORSOrigins); origins != "" {
		c.Server.CORSOrigins = splitList(origins)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "issuetracker", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "issuetracker", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Client.APIBase == "" {
		c.Client.APIBase = DefaultAPIBase
	}
	c.Client.APIBase = strings.TrimRight(c.Client.APIBase, "/")
	if c.Client.Timeout <= 0 {
		c.Client.Timeout = DefaultClientTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.Theme.ApplyDefaults()
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
