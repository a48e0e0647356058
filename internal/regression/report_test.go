package regression

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate_PerfectFit(t *testing.T) {
	m := Model{Bias: 10000, Slope: -0.05}

	report, err := Evaluate(linearSamples, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Samples != 3 {
		t.Errorf("expected 3 samples, got %d", report.Samples)
	}
	if report.MSE > 1e-9 {
		t.Errorf("expected MSE ~0, got %f", report.MSE)
	}
	if math.Abs(report.RSquared-1) > 1e-9 {
		t.Errorf("expected R² ~1, got %f", report.RSquared)
	}
	if math.Abs(report.Reference.Bias-10000) > 1e-6 || math.Abs(report.Reference.Slope+0.05) > 1e-9 {
		t.Errorf("unexpected reference fit %+v", report.Reference)
	}
}

func TestEvaluate_TrainedModelMatchesReference(t *testing.T) {
	res, _ := train(t, carSamples, strictConfig())

	report, err := Evaluate(carSamples, res.Model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(report.Reference.Bias-res.Model.Bias) > 1 {
		t.Errorf("bias %f far from least squares %f", res.Model.Bias, report.Reference.Bias)
	}
	if math.Abs(report.Reference.Slope-res.Model.Slope) > 1e-5 {
		t.Errorf("slope %g far from least squares %g", res.Model.Slope, report.Reference.Slope)
	}
	if report.RSquared <= 0 || report.RSquared > 1 {
		t.Errorf("expected R² in (0, 1], got %f", report.RSquared)
	}
}

func TestEvaluate_ConstantMileage(t *testing.T) {
	samples := []Sample{{Mileage: 100, Price: 10}, {Mileage: 100, Price: 20}}

	report, err := Evaluate(samples, Model{Bias: 15})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Reference.Slope != 0 || report.Reference.Bias != 15 {
		t.Errorf("expected mean-price reference, got %+v", report.Reference)
	}
}

func TestEvaluate_Empty(t *testing.T) {
	_, err := Evaluate(nil, Model{})
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestTrainConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*TrainConfig)
		wantErr bool
	}{
		{"defaults", func(c *TrainConfig) {}, false},
		{"min learning rate", func(c *TrainConfig) { c.LearningRate = MinLearningRate }, false},
		{"max learning rate", func(c *TrainConfig) { c.LearningRate = MaxLearningRate }, false},
		{"learning rate zero", func(c *TrainConfig) { c.LearningRate = 0 }, true},
		{"learning rate negative", func(c *TrainConfig) { c.LearningRate = -0.1 }, true},
		{"learning rate too small", func(c *TrainConfig) { c.LearningRate = 0.00005 }, true},
		{"learning rate too large", func(c *TrainConfig) { c.LearningRate = 0.6 }, true},
		{"learning rate NaN", func(c *TrainConfig) { c.LearningRate = math.NaN() }, true},
		{"threshold too small", func(c *TrainConfig) { c.ConvergenceThreshold = 0.00001 }, true},
		{"threshold too large", func(c *TrainConfig) { c.ConvergenceThreshold = 1.5 }, true},
		{"max threshold", func(c *TrainConfig) { c.ConvergenceThreshold = MaxConvergenceThreshold }, false},
		{"zero iterations", func(c *TrainConfig) { c.MaxIterations = 0 }, true},
		{"negative workers", func(c *TrainConfig) { c.Workers = -1 }, true},
		{"infinite seed", func(c *TrainConfig) { c.InitialBias = math.Inf(1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTrainConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
