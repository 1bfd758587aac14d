package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPath string // webforge.hcl file or project directory

	LogFormat string
	LogLevel  string
	LogFile   string // optional; rotated file output when set
}

// NewConfig validates a raw Config value.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
