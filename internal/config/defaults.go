package config

import "github.com/haskel/carprice/internal/regression"

func Default() *Config {
	return &Config{
		Training: TrainingConfig{
			LearningRate:         regression.DefaultLearningRate,
			ConvergenceThreshold: regression.DefaultConvergenceThreshold,
			MaxIterations:        regression.DefaultMaxIterations,
			Workers:              1,
			TimeoutSec:           0,
			TraceEvery:           1,
		},
		Storage: StorageConfig{
			DataDir:   ".",
			ModelFile: "model.txt",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Chart: ChartConfig{
			Width:  60,
			Height: 20,
		},
	}
}
