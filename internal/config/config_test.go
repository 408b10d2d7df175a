package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Name != "botsift" {
		t.Errorf("Name = %q", cfg.Service.Name)
	}
	if cfg.Service.Port != 8080 {
		t.Errorf("Port = %d", cfg.Service.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if cfg.Database.Driver != "sqlite3" {
		t.Errorf("Driver = %q", cfg.Database.Driver)
	}
	if cfg.YouTube.MaxComments != 200 {
		t.Errorf("MaxComments = %d", cfg.YouTube.MaxComments)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("LLM timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.LLM.Enabled {
		t.Error("LLM should default to disabled")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
service:
  name: custom-name
  port: 9090
logging:
  level: debug
llm:
  enabled: true
  base_url: http://localhost:5000
  timeout: 10s
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.Name != "custom-name" || cfg.Service.Port != 9090 {
		t.Errorf("service = %+v", cfg.Service)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if !cfg.LLM.Enabled || cfg.LLM.BaseURL != "http://localhost:5000" || cfg.LLM.Timeout != 10*time.Second {
		t.Errorf("llm = %+v", cfg.LLM)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.Port != 8080 {
		t.Errorf("Port = %d", cfg.Service.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BOTSIFT_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("BOTSIFT_DB_DRIVER", "postgres")
	t.Setenv("YOUTUBE_API_KEY", "secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.Port != 3000 {
		t.Errorf("Port = %d, want env override", cfg.Service.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Driver = %q", cfg.Database.Driver)
	}
	if cfg.YouTube.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.YouTube.APIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too large", func(c *Config) { c.Service.Port = 70000 }},
		{"negative port", func(c *Config) { c.Service.Port = -1 }},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }},
		{"llm enabled without url", func(c *Config) {
			c.LLM.Enabled = true
			c.LLM.BaseURL = ""
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.setDefaults()
			tt.mutate(cfg)
			if err := cfg.validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
