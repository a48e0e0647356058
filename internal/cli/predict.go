package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haskel/carprice/internal/regression"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict a car price from its mileage",
	Long: `Predict the price of a car with mileage --mileage using the coefficients
learned by train. Coefficients come from --theta-0/--theta-1, from --model,
or from the configured model file.

With --expected the prediction is compared to a known price and the
precision floor(min/max * 100) is reported.`,
	Example: `  carprice predict -m 50000 --theta-0 8499.6 --theta-1 -0.0214
  carprice predict -m 50000 --model model.txt -e 7000`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

var (
	predictMileage  float64
	predictExpected int
	predictModel    modelFlags
)

func init() {
	predictCmd.Flags().Float64VarP(&predictMileage, "mileage", "m", 0, "mileage you want to predict price for")
	predictCmd.Flags().IntVarP(&predictExpected, "expected", "e", 0, "expected price to compare and calc prediction precision")
	predictModel.register(predictCmd)
	_ = predictCmd.MarkFlagRequired("mileage")
	rootCmd.AddCommand(predictCmd)
}

type predictOutput struct {
	Mileage        float64 `json:"mileage"`
	PredictedPrice float64 `json:"predicted_price"`
	ExpectedPrice  *int    `json:"expected_price,omitempty"`
	Precision      *int    `json:"precision,omitempty"`
}

func runPredict(cmd *cobra.Command, args []string) error {
	hasExpected := cmd.Flags().Changed("expected")
	if hasExpected && predictExpected < 0 {
		return fmt.Errorf("%w: expected price can't be less than 0", regression.ErrInvalidInput)
	}

	model, err := predictModel.resolve(cmd)
	if err != nil {
		return err
	}

	predicted, err := regression.Predict(predictMileage, model)
	if err != nil {
		return err
	}

	out := predictOutput{
		Mileage:        predictMileage,
		PredictedPrice: predicted,
	}

	if hasExpected {
		precision, err := regression.Precision(predicted, predictExpected)
		if err != nil {
			return err
		}
		expected := predictExpected
		out.ExpectedPrice = &expected
		out.Precision = &precision
	}

	log.Debug("prediction",
		"mileage", predictMileage,
		"theta0", model.Bias,
		"theta1", model.Slope,
		"price", predicted,
	)

	w := cmd.OutOrStdout()
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(w, "Predicted price: %d\n", int(predicted))
	if out.ExpectedPrice != nil {
		fmt.Fprintf(w, "Expected price: %d\n", *out.ExpectedPrice)
		fmt.Fprintf(w, "Precision: %d%%\n", *out.Precision)
	}
	return nil
}
