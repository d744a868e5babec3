// Package config loads application settings from an optional YAML file with
// environment variable overrides for deployment-sensitive values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Vocabulary struct {
		FirstNames string `yaml:"first_names"`
		LastNames  string `yaml:"last_names"`
	} `yaml:"vocabulary"`

	Corrector struct {
		MaxEditDistance int `yaml:"max_edit_distance"`
		TopKCandidates  int `yaml:"top_k_candidates"`
	} `yaml:"corrector"`

	Oracle struct {
		Model             string  `yaml:"model"`
		RequestsPerMinute float64 `yaml:"requests_per_minute"`
		TimeoutSeconds    int     `yaml:"timeout_seconds"`
	} `yaml:"oracle"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Batch struct {
		Workers int `yaml:"workers"`
	} `yaml:"batch"`

	HTTPAddr string `yaml:"http_addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Vocabulary.FirstNames = "data/first_names.csv"
	cfg.Vocabulary.LastNames = "data/last_names.csv"
	cfg.Corrector.MaxEditDistance = 2
	cfg.Corrector.TopKCandidates = 5
	cfg.Oracle.RequestsPerMinute = 60
	cfg.Oracle.TimeoutSeconds = 15
	cfg.HTTPAddr = ":8080"
	return cfg
}

// OracleTimeout returns the per-call oracle timeout.
func (c *Config) OracleTimeout() time.Duration {
	return time.Duration(c.Oracle.TimeoutSeconds) * time.Second
}

// Load reads path (when non-empty) over the defaults and then applies
// environment overrides. A missing file with an empty path is not an error;
// an explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// Env overrides keep credentials and addresses out of the config file.
func (c *Config) applyEnv() {
	c.Vocabulary.FirstNames = getenv("FIRST_NAMES_PATH", c.Vocabulary.FirstNames)
	c.Vocabulary.LastNames = getenv("LAST_NAMES_PATH", c.Vocabulary.LastNames)
	c.Redis.Addr = getenv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getenv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)
	c.Oracle.Model = getenv("ORACLE_MODEL", c.Oracle.Model)
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
}

// AnthropicAPIKey returns the oracle credential, empty when unconfigured.
// An absent key is a valid configuration, not an error.
func (c *Config) AnthropicAPIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
