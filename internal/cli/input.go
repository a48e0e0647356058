package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/carprice/internal/dataset"
	"github.com/haskel/carprice/internal/monitor"
	"github.com/haskel/carprice/internal/regression"
	"github.com/haskel/carprice/internal/storage"
)

// memoryGuard is swapped in tests.
var memoryGuard interface {
	CheckFits(size uint64) error
} = monitor.NewMemoryMonitor()

// loadSamples reads the dataset from path, or from stdin when path is empty.
func loadSamples(cmd *cobra.Command, path string) ([]regression.Sample, error) {
	if path == "" {
		log.Debug("reading dataset from stdin")
		return dataset.Load(cmd.InOrStdin())
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("can't open dataset: %w", err)
	}
	if err := memoryGuard.CheckFits(uint64(stat.Size())); err != nil {
		return nil, err
	}

	log.Debug("reading dataset", "path", path, "bytes", stat.Size())
	return dataset.LoadFile(path)
}

// modelFlags are the shared ways to hand a trained model to a command.
type modelFlags struct {
	path   string
	theta0 float64
	theta1 float64
}

func (f *modelFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "model", "", "model file written by train (default: storage.data_dir/storage.model_file)")
	cmd.Flags().Float64Var(&f.theta0, "theta-0", 0, "theta0 (bias) value")
	cmd.Flags().Float64Var(&f.theta1, "theta-1", 0, "theta1 (slope) value")
}

// resolve prefers explicit coefficients, then --model, then the configured
// model file.
func (f *modelFlags) resolve(cmd *cobra.Command) (regression.Model, error) {
	has0 := cmd.Flags().Changed("theta-0")
	has1 := cmd.Flags().Changed("theta-1")

	switch {
	case has0 && has1:
		return regression.Model{Bias: f.theta0, Slope: f.theta1}, nil
	case has0 || has1:
		return regression.Model{}, fmt.Errorf("%w: --theta-0 and --theta-1 must be given together",
			regression.ErrInvalidInput)
	}

	store := storage.NewModelStore(appConfig.Storage.DataDir, appConfig.Storage.ModelFile, log)
	if f.path != "" {
		store = storage.OpenModelStore(f.path, log)
	}

	var m regression.Model
	if err := store.Load(&m); err != nil {
		return regression.Model{}, err
	}
	return m, nil
}
