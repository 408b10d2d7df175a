// Package config loads the botsift service configuration from a YAML file
// with environment variable overrides (.env files supported).
package config

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	defaultServiceName    = "botsift"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8080
	defaultLogLevel       = "info"
	defaultDBDriver       = "sqlite3"
	defaultDBDSN          = "botsift.db"
	defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"
	defaultMaxComments    = 200
	defaultFetchRPS       = 5
	defaultLLMTimeout     = 30 * time.Second
)

// Config holds all configuration for the botsift service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Logging  LoggingConfig  `yaml:"logging"`
	Database DatabaseConfig `yaml:"database"`
	YouTube  YouTubeConfig  `yaml:"youtube"`
	LLM      LLMConfig      `yaml:"llm"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"BOTSIFT_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"    yaml:"debug"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" yaml:"level"`
}

// DatabaseConfig holds the phrase store configuration. Driver is "sqlite3"
// or "postgres"; DSN is the driver-specific connection string.
type DatabaseConfig struct {
	Driver string `env:"BOTSIFT_DB_DRIVER" yaml:"driver"`
	DSN    string `env:"BOTSIFT_DB_DSN"    yaml:"dsn"`
}

// YouTubeConfig holds the comment fetch collaborator configuration.
type YouTubeConfig struct {
	APIKey            string `env:"YOUTUBE_API_KEY" yaml:"api_key"`
	BaseURL           string `yaml:"base_url"`
	MaxComments       int    `yaml:"max_comments"`
	RequestsPerSecond int    `yaml:"requests_per_second"`
}

// LLMConfig holds the secondary classifier collaborator configuration.
type LLMConfig struct {
	Enabled bool          `env:"BOTSIFT_LLM_ENABLED" yaml:"enabled"`
	BaseURL string        `env:"BOTSIFT_LLM_URL"     yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Load reads configuration from path (optional), applies defaults, then
// environment overrides, then validates.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := load(path, cfg); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = defaultServiceName
	}
	if c.Service.Version == "" {
		c.Service.Version = defaultServiceVersion
	}
	if c.Service.Port == 0 {
		c.Service.Port = defaultServicePort
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Database.Driver == "" {
		c.Database.Driver = defaultDBDriver
	}
	if c.Database.DSN == "" {
		c.Database.DSN = defaultDBDSN
	}
	if c.YouTube.BaseURL == "" {
		c.YouTube.BaseURL = defaultYouTubeBaseURL
	}
	if c.YouTube.MaxComments <= 0 {
		c.YouTube.MaxComments = defaultMaxComments
	}
	if c.YouTube.RequestsPerSecond <= 0 {
		c.YouTube.RequestsPerSecond = defaultFetchRPS
	}
	if c.LLM.Timeout <= 0 {
		c.LLM.Timeout = defaultLLMTimeout
	}
}

func (c *Config) validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid service port: %d", c.Service.Port)
	}
	switch c.Database.Driver {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.LLM.Enabled && c.LLM.BaseURL == "" {
		return fmt.Errorf("llm enabled but base_url is empty")
	}
	return nil
}
