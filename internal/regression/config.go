package regression

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultLearningRate         = 0.1
	DefaultConvergenceThreshold = 0.01
	DefaultMaxIterations        = 1_000_000

	MinLearningRate         = 0.0001
	MaxLearningRate         = 0.5
	MinConvergenceThreshold = 0.0001
	MaxConvergenceThreshold = 1.0
)

// TrainConfig is fixed for the duration of one training run.
type TrainConfig struct {
	LearningRate         float64
	ConvergenceThreshold float64
	// MaxIterations bounds the loop; reaching it yields a DidNotConvergeError.
	MaxIterations int
	// Workers > 1 enables the parallel gradient reduction on large sets.
	Workers int

	InitialBias  float64
	InitialSlope float64
}

// DefaultTrainConfig returns the configuration used when nothing is overridden.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		LearningRate:         DefaultLearningRate,
		ConvergenceThreshold: DefaultConvergenceThreshold,
		MaxIterations:        DefaultMaxIterations,
		Workers:              1,
	}
}

// Validate checks every bound and reports all violations at once.
func (c TrainConfig) Validate() error {
	var errs []error

	if math.IsNaN(c.LearningRate) || c.LearningRate < MinLearningRate || c.LearningRate > MaxLearningRate {
		errs = append(errs, fmt.Errorf("learning rate must be between %g and %g, got %g",
			MinLearningRate, MaxLearningRate, c.LearningRate))
	}

	if math.IsNaN(c.ConvergenceThreshold) || c.ConvergenceThreshold < MinConvergenceThreshold || c.ConvergenceThreshold > MaxConvergenceThreshold {
		errs = append(errs, fmt.Errorf("convergence threshold must be between %g and %g, got %g",
			MinConvergenceThreshold, MaxConvergenceThreshold, c.ConvergenceThreshold))
	}

	if c.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("max iterations must be at least 1, got %d", c.MaxIterations))
	}

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be non-negative, got %d", c.Workers))
	}

	if !isFinite(c.InitialBias) || !isFinite(c.InitialSlope) {
		errs = append(errs, errors.New("initial coefficients must be finite"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
