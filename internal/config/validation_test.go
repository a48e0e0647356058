package config

import (
	"testing"
)

func TestValidateDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidateTraining(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*TrainingConfig)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			modify:  func(t *TrainingConfig) {},
			wantErr: false,
		},
		{
			name: "learning rate too large",
			modify: func(t *TrainingConfig) {
				t.LearningRate = 0.51
			},
			wantErr: true,
		},
		{
			name: "learning rate too small",
			modify: func(t *TrainingConfig) {
				t.LearningRate = 0.00001
			},
			wantErr: true,
		},
		{
			name: "threshold too large",
			modify: func(t *TrainingConfig) {
				t.ConvergenceThreshold = 2
			},
			wantErr: true,
		},
		{
			name: "no iterations",
			modify: func(t *TrainingConfig) {
				t.MaxIterations = 0
			},
			wantErr: true,
		},
		{
			name: "negative timeout",
			modify: func(t *TrainingConfig) {
				t.TimeoutSec = -1
			},
			wantErr: true,
		},
		{
			name: "zero trace interval",
			modify: func(t *TrainingConfig) {
				t.TraceEvery = 0
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg.Training)
			err := cfg.Training.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		level   string
		format  string
		wantErr bool
	}{
		{"debug", "json", false},
		{"info", "text", false},
		{"warn", "json", false},
		{"error", "text", false},
		{"trace", "json", true},
		{"info", "xml", true},
	}

	for _, tt := range tests {
		l := LoggingConfig{Level: tt.level, Format: tt.format}
		err := l.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("level=%s format=%s: wantErr=%v, got %v", tt.level, tt.format, tt.wantErr, err)
		}
	}
}

func TestValidateStorageAndChart(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = ""
	cfg.Chart.Height = 2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
}
