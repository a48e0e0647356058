package regression

import (
	"context"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	// parallelThreshold is the smallest set for which gradient sums are split
	// across workers.
	parallelThreshold = 4096

	ctxCheckEvery = 256
)

// Iteration is one entry of the verbose training trace. Slope is already in
// raw mileage units.
type Iteration struct {
	Index int
	Bias  float64
	Slope float64
}

// TraceFunc receives the model state before each update.
type TraceFunc func(Iteration)

// Result is the outcome of a training run.
type Result struct {
	Model      Model
	Iterations int
	Converged  bool
	Scale      float64
}

// Trainer runs batch gradient descent over a NormalizedSet.
type Trainer struct {
	cfg    TrainConfig
	trace  TraceFunc
	logger *slog.Logger
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithTrace installs an observer for every iteration.
func WithTrace(fn TraceFunc) Option {
	return func(t *Trainer) {
		t.trace = fn
	}
}

// WithLogger sets the logger used for run summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Trainer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTrainer validates cfg and returns a Trainer.
func NewTrainer(cfg TrainConfig, opts ...Option) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Trainer{
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Config returns the configuration the trainer was built with.
func (t *Trainer) Config() TrainConfig {
	return t.cfg
}

// Train fits bias and slope on the normalized set and returns the model in raw
// mileage units.
//
// On the stopping iteration the proposed coefficients are committed. If the
// loop ends any other way the returned error is a *DidNotConvergeError and the
// Result still holds the best model reached.
func (t *Trainer) Train(ctx context.Context, set NormalizedSet) (Result, error) {
	if set.Len() == 0 {
		return Result{}, ErrEmptyDataset
	}

	bias, slope := t.cfg.InitialBias, t.cfg.InitialSlope
	scale := set.Scale

	result := func(iterations int, converged bool) Result {
		return Result{
			Model: Model{
				Bias:  bias,
				Slope: scale.DenormalizeSlope(slope),
			},
			Iterations: iterations,
			Converged:  converged,
			Scale:      scale.Value(),
		}
	}

	stop := func(iterations int, reason StopReason) (Result, error) {
		res := result(iterations, false)
		t.logger.Warn("training stopped before convergence",
			"iterations", iterations,
			"reason", reason,
			"theta0", res.Model.Bias,
			"theta1", res.Model.Slope,
		)
		return res, &DidNotConvergeError{
			Iterations: iterations,
			Reason:     reason,
			Model:      res.Model,
		}
	}

	lr := t.cfg.LearningRate
	threshold := t.cfg.ConvergenceThreshold

	for i := 0; i < t.cfg.MaxIterations; i++ {
		if i%ctxCheckEvery == 0 && ctx.Err() != nil {
			return stop(i, StopDeadline)
		}

		if t.trace != nil {
			t.trace(Iteration{Index: i, Bias: bias, Slope: scale.DenormalizeSlope(slope)})
		}

		biasGrad, slopeGrad := t.gradients(set.Samples, bias, slope)
		newSlope := slope - lr*slopeGrad
		newBias := bias - lr*biasGrad

		if !isFinite(newSlope) || !isFinite(newBias) {
			return stop(i, StopDiverged)
		}

		converged := math.Abs(newSlope-slope) <= threshold && math.Abs(newBias-bias) <= threshold
		bias, slope = newBias, newSlope

		if converged {
			res := result(i+1, true)
			t.logger.Debug("training converged",
				"iterations", res.Iterations,
				"theta0", res.Model.Bias,
				"theta1", res.Model.Slope,
			)
			return res, nil
		}
	}

	return stop(t.cfg.MaxIterations, StopMaxIterations)
}

// gradients returns the mean bias and slope gradients over samples.
func (t *Trainer) gradients(samples []NormalizedSample, bias, slope float64) (float64, float64) {
	n := float64(len(samples))

	workers := t.cfg.Workers
	if workers <= 1 || len(samples) < parallelThreshold {
		b, s := partialSums(samples, bias, slope)
		return b / n, s / n
	}

	chunk := (len(samples) + workers - 1) / workers
	type partial struct{ bias, slope float64 }
	parts := make([]partial, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(samples) {
			break
		}
		hi := min(lo+chunk, len(samples))
		g.Go(func() error {
			b, s := partialSums(samples[lo:hi], bias, slope)
			parts[w] = partial{bias: b, slope: s}
			return nil
		})
	}
	_ = g.Wait()

	// Summed in chunk order so the result does not depend on scheduling.
	var sumBias, sumSlope float64
	for _, p := range parts {
		sumBias += p.bias
		sumSlope += p.slope
	}
	return sumBias / n, sumSlope / n
}

func partialSums(samples []NormalizedSample, bias, slope float64) (float64, float64) {
	var sumBias, sumSlope float64
	for _, s := range samples {
		diff := slope*s.Mileage + bias - s.Price
		sumBias += diff
		sumSlope += diff * s.Mileage
	}
	return sumBias, sumSlope
}
