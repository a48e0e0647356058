package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/haskel/carprice/internal/cli/chart"
	"github.com/haskel/carprice/internal/regression"
	"github.com/haskel/carprice/internal/storage"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit theta0 and theta1 on a km,price dataset",
	Long: `Train a linear model of price against mileage with batch gradient descent.

Input is CSV with a "km,price" header, read from --file or stdin. Mileage is
divided by its mean before training and the learned slope is scaled back, so
the printed coefficients apply to raw mileage:

  theta0=<bias>
  theta1=<slope>`,
	Example: `  carprice train -f data.csv
  carprice train -l 0.05 -d 0.0001 --save < data.csv
  carprice train -f data.csv --report --chart`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

var (
	trainFile          string
	trainLearningRate  float64
	trainStepDiff      float64
	trainMaxIterations int
	trainWorkers       int
	trainTimeout       time.Duration
	trainSave          bool
	trainOut           string
	trainReport        bool
	trainChart         bool
	trainAllowPartial  bool
)

func init() {
	trainCmd.Flags().StringVarP(&trainFile, "file", "f", "", "dataset file (stdin by default)")
	trainCmd.Flags().Float64VarP(&trainLearningRate, "learning-rate", "l", regression.DefaultLearningRate, "learning rate (0.0001 to 0.5)")
	trainCmd.Flags().Float64VarP(&trainStepDiff, "step-diff", "d", regression.DefaultConvergenceThreshold, "convergence threshold per coefficient (0.0001 to 1)")
	trainCmd.Flags().IntVar(&trainMaxIterations, "max-iterations", regression.DefaultMaxIterations, "stop after this many iterations")
	trainCmd.Flags().IntVar(&trainWorkers, "workers", 1, "goroutines for gradient sums on large datasets")
	trainCmd.Flags().DurationVar(&trainTimeout, "timeout", 0, "stop training after this long (0 disables)")
	trainCmd.Flags().BoolVar(&trainSave, "save", false, "write the model to the configured model file")
	trainCmd.Flags().StringVarP(&trainOut, "out", "o", "", "write the model to this file")
	trainCmd.Flags().BoolVar(&trainReport, "report", false, "print fit quality against least squares")
	trainCmd.Flags().BoolVar(&trainChart, "chart", false, "show a chart of the samples and fitted line")
	trainCmd.Flags().BoolVar(&trainAllowPartial, "allow-partial", false, "accept a model that did not converge")
	rootCmd.AddCommand(trainCmd)
}

type trainOutput struct {
	regression.Model
	Iterations int                `json:"iterations"`
	Converged  bool               `json:"converged"`
	Scale      float64            `json:"scale_factor"`
	Report     *regression.Report `json:"report,omitempty"`
}

// trainConfig merges config file values with flags the user set explicitly.
func trainConfig(cmd *cobra.Command) (regression.TrainConfig, time.Duration) {
	tc := appConfig.TrainConfig()
	timeout := appConfig.Timeout()

	flags := cmd.Flags()
	if flags.Changed("learning-rate") {
		tc.LearningRate = trainLearningRate
	}
	if flags.Changed("step-diff") {
		tc.ConvergenceThreshold = trainStepDiff
	}
	if flags.Changed("max-iterations") {
		tc.MaxIterations = trainMaxIterations
	}
	if flags.Changed("workers") {
		tc.Workers = trainWorkers
	}
	if flags.Changed("timeout") {
		timeout = trainTimeout
	}
	return tc, timeout
}

func runTrain(cmd *cobra.Command, args []string) error {
	tc, timeout := trainConfig(cmd)
	if err := tc.Validate(); err != nil {
		return err
	}

	samples, err := loadSamples(cmd, trainFile)
	if err != nil {
		return err
	}

	set, err := regression.Normalize(samples)
	if err != nil {
		return err
	}

	opts := []regression.Option{regression.WithLogger(log)}
	if verbose {
		opts = append(opts, regression.WithTrace(traceWriter(cmd.ErrOrStderr(), appConfig.Training.TraceEvery)))
	}

	trainer, err := regression.NewTrainer(tc, opts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.Info("training started",
		"samples", set.Len(),
		"scale_factor", set.Scale.Value(),
		"learning_rate", tc.LearningRate,
		"convergence_threshold", tc.ConvergenceThreshold,
	)

	res, trainErr := trainer.Train(ctx, set)
	var dnc *regression.DidNotConvergeError
	if trainErr != nil && !errors.As(trainErr, &dnc) {
		return trainErr
	}

	out := trainOutput{
		Model:      res.Model,
		Iterations: res.Iterations,
		Converged:  res.Converged,
		Scale:      res.Scale,
	}
	if trainReport {
		report, err := regression.Evaluate(samples, res.Model)
		if err != nil {
			return err
		}
		out.Report = &report
	}

	if err := printTrainOutput(cmd.OutOrStdout(), out); err != nil {
		return err
	}

	if dnc != nil && !trainAllowPartial {
		return trainErr
	}
	if dnc != nil {
		log.Warn("using partial model", "reason", dnc.Reason, "iterations", dnc.Iterations)
	}

	if err := saveModel(res.Model); err != nil {
		return err
	}

	if trainChart {
		return chart.Run(chart.Plot{
			Samples: samples,
			Model:   res.Model,
			Width:   appConfig.Chart.Width,
			Height:  appConfig.Chart.Height,
		})
	}
	return nil
}

func saveModel(m regression.Model) error {
	var stores []*storage.ModelStore
	if trainSave {
		stores = append(stores, storage.NewModelStore(appConfig.Storage.DataDir, appConfig.Storage.ModelFile, log))
	}
	if trainOut != "" {
		stores = append(stores, storage.OpenModelStore(trainOut, log))
	}

	for _, store := range stores {
		if err := store.Save(m); err != nil {
			return err
		}
		log.Info("model saved", "path", store.Path())
	}
	return nil
}

func printTrainOutput(w io.Writer, out trainOutput) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if err := out.Model.Save(w); err != nil {
		return err
	}

	if out.Report != nil {
		r := out.Report
		fmt.Fprintf(w, "# iterations=%d converged=%t\n", out.Iterations, out.Converged)
		fmt.Fprintf(w, "# mse=%g r2=%.6f\n", r.MSE, r.RSquared)
		fmt.Fprintf(w, "# least squares: theta0=%g theta1=%g\n", r.Reference.Bias, r.Reference.Slope)
	}
	return nil
}

// traceWriter prints every Nth iteration of a training run.
func traceWriter(w io.Writer, every int) regression.TraceFunc {
	sometimes := &rate.Sometimes{Every: every}
	return func(it regression.Iteration) {
		sometimes.Do(func() {
			fmt.Fprintf(w, "ITERATION: %d\n", it.Index)
			fmt.Fprintf(w, "Theta0 (bias): %.6f\n", it.Bias)
			fmt.Fprintf(w, "Theta1 (slope): %.6f\n\n", it.Slope)
		})
	}
}
