package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
)

// Config is the recognized option surface of the engine and its thin serving
// shell. Values come from a YAML file; DATABASE_URL and PORT environment
// variables override their file counterparts so container deployments work
// without a mounted file.
type Config struct {
	Port string `yaml:"port"`

	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`

	AMQP struct {
		URL string `yaml:"url"`
	} `yaml:"amqp"`

	Engine struct {
		DefaultStrategy      string `yaml:"default_strategy"`
		AssignmentRetryLimit int    `yaml:"assignment_retry_limit"`
		SaturationIsError    bool   `yaml:"saturation_is_error"`
	} `yaml:"engine"`
}

// Load reads the file at path when it exists, then applies env overrides and
// defaults. A missing file is not an error; everything has a default except
// the database URL, which the composition root validates.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshaling config: %w", err)
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("AMQP_URL"); v != "" {
		cfg.AMQP.URL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Engine.DefaultStrategy == "" {
		cfg.Engine.DefaultStrategy = string(domainqueue.StrategyRoundRobin)
	}
	if _, err := domainqueue.ParseStrategy(cfg.Engine.DefaultStrategy); err != nil {
		return nil, err
	}
	if cfg.Engine.AssignmentRetryLimit <= 0 {
		cfg.Engine.AssignmentRetryLimit = 3
	}

	return cfg, nil
}
