package regression

import (
	"math"
)

// Predict returns the estimated price for a raw mileage. The model must
// already be de-normalized, which is what Train returns.
func Predict(mileage float64, m Model) (float64, error) {
	if math.IsNaN(mileage) || mileage < 0 {
		return 0, invalidf("mileage can't be less than 0, got %g", mileage)
	}
	return m.Estimate(mileage), nil
}

// Precision compares a prediction with the expected price as a whole
// percentage: floor(min/max * 100).
//
// Both zero reports 100. A non-positive prediction against a positive
// expected price reports 0.
func Precision(predicted float64, expected int) (int, error) {
	if expected < 0 {
		return 0, invalidf("expected price can't be less than 0, got %d", expected)
	}
	if math.IsNaN(predicted) {
		return 0, invalidf("predicted price is not a number")
	}

	exp := float64(expected)
	switch {
	case predicted == 0 && exp == 0:
		return 100, nil
	case predicted <= 0:
		return 0, nil
	}

	lo, hi := math.Min(predicted, exp), math.Max(predicted, exp)
	return int(math.Floor(lo / hi * 100)), nil
}
