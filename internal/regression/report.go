package regression

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Report summarizes how well a model fits the raw samples.
type Report struct {
	Samples int     `json:"samples"`
	MSE     float64 `json:"mse"`
	// RSquared is the coefficient of determination of the model on the samples.
	RSquared float64 `json:"r_squared"`
	// Reference is the closed-form least squares fit of the same samples.
	Reference Model `json:"reference"`
}

// Evaluate computes a Report for m over the raw samples.
func Evaluate(samples []Sample, m Model) (Report, error) {
	if len(samples) == 0 {
		return Report{}, ErrEmptyDataset
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	estimates := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.Mileage
		ys[i] = float64(s.Price)
		estimates[i] = m.Estimate(s.Mileage)
	}

	report := Report{
		Samples: len(samples),
		MSE:     MeanSquaredError(samples, m),
	}

	if constant(xs) {
		report.Reference = Model{Bias: stat.Mean(ys, nil)}
	} else {
		alpha, beta := stat.LinearRegression(xs, ys, nil, false)
		report.Reference = Model{Bias: alpha, Slope: beta}
	}

	if constant(ys) {
		// No variance to explain.
		if report.MSE < 1e-9 {
			report.RSquared = 1
		}
	} else {
		report.RSquared = stat.RSquaredFrom(estimates, ys, nil)
	}

	return report, nil
}

// MeanSquaredError is the training cost of m on the raw samples.
func MeanSquaredError(samples []Sample, m Model) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, s := range samples {
		d := m.Estimate(s.Mileage) - float64(s.Price)
		sum += d * d
	}
	return sum / float64(len(samples))
}

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
