package config

import (
	"time"

	"github.com/haskel/carprice/internal/regression"
)

type Config struct {
	Training TrainingConfig `yaml:"training" json:"training"`
	Storage  StorageConfig  `yaml:"storage" json:"storage"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
	Chart    ChartConfig    `yaml:"chart" json:"chart"`
}

// TrainingConfig holds gradient descent parameters.
type TrainingConfig struct {
	LearningRate         float64 `yaml:"learning_rate" json:"learning_rate"`
	ConvergenceThreshold float64 `yaml:"convergence_threshold" json:"convergence_threshold"`
	MaxIterations        int     `yaml:"max_iterations" json:"max_iterations"`

	// Workers > 1 splits gradient sums over goroutines for large datasets.
	Workers int `yaml:"workers" json:"workers"`

	// TimeoutSec bounds a training run; 0 disables the deadline.
	TimeoutSec int `yaml:"timeout_sec" json:"timeout_sec"`

	// TraceEvery prints every Nth iteration in verbose mode.
	TraceEvery int `yaml:"trace_every" json:"trace_every"`
}

type StorageConfig struct {
	// DataDir is where `train --save` writes the model file.
	DataDir   string `yaml:"data_dir" json:"data_dir"`
	ModelFile string `yaml:"model_file" json:"model_file"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

type ChartConfig struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Training.TimeoutSec) * time.Second
}

// TrainConfig converts the training section into the trainer's configuration.
func (c *Config) TrainConfig() regression.TrainConfig {
	cfg := regression.DefaultTrainConfig()
	cfg.LearningRate = c.Training.LearningRate
	cfg.ConvergenceThreshold = c.Training.ConvergenceThreshold
	cfg.MaxIterations = c.Training.MaxIterations
	cfg.Workers = c.Training.Workers
	return cfg
}
