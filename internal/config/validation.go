package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.Training.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("training: %w", err))
	}

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("storage: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Chart.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("chart: %w", err))
	}

	return errors.Join(errs...)
}

func (t *TrainingConfig) Validate() error {
	var errs []error

	cfg := Config{Training: *t}
	if err := cfg.TrainConfig().Validate(); err != nil {
		errs = append(errs, err)
	}

	if t.TimeoutSec < 0 {
		errs = append(errs, fmt.Errorf("timeout_sec must be non-negative, got %d", t.TimeoutSec))
	}

	if t.TraceEvery < 1 {
		errs = append(errs, fmt.Errorf("trace_every must be at least 1, got %d", t.TraceEvery))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) Validate() error {
	if s.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if s.ModelFile == "" {
		return fmt.Errorf("model_file cannot be empty")
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, text)", l.Format)
	}

	return nil
}

func (c *ChartConfig) Validate() error {
	if c.Width < 20 {
		return fmt.Errorf("width must be at least 20, got %d", c.Width)
	}
	if c.Height < 8 {
		return fmt.Errorf("height must be at least 8, got %d", c.Height)
	}
	return nil
}
