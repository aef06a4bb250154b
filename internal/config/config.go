package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the console server configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Generation struct {
		Endpoint       string `yaml:"endpoint"`
		Token          string `yaml:"token"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"generation"`

	Reranker struct {
		URL     string `yaml:"url"`
		Base    string `yaml:"base"`
		LoadDir string `yaml:"load_dir"`
	} `yaml:"reranker"`

	EvalLimit int `yaml:"eval_limit"`
}

// LoadConfig loads configuration from a YAML file. Values may reference
// environment variables with ${VAR} syntax; they are expanded before decoding.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

// Default returns a configuration with all defaults applied, for running
// without a config file.
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8600"
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/ranker.db"
	}
	if c.Generation.TimeoutSeconds == 0 {
		c.Generation.TimeoutSeconds = 120
	}
	if c.Reranker.URL == "" {
		c.Reranker.URL = "http://localhost:8601/score"
	}
	if c.Reranker.Base == "" {
		c.Reranker.Base = "cross-encoder/ms-marco-MiniLM-L-6-v2"
	}
	if c.EvalLimit == 0 {
		c.EvalLimit = 200
	}
}
