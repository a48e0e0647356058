package regression

import (
	"gonum.org/v1/gonum/stat"
)

// Sample is one observed car: its mileage in km and its price.
type Sample struct {
	Mileage float64 `json:"km"`
	Price   int     `json:"price"`
}

// NormalizedSample is a Sample with mileage divided by the scale factor.
type NormalizedSample struct {
	Mileage float64
	Price   float64
}

// ScaleFactor is the divisor applied to raw mileage. The same value must be
// used to de-normalize the trained slope, so it only travels inside a
// NormalizedSet.
type ScaleFactor struct {
	value float64
}

// Value returns the raw divisor.
func (s ScaleFactor) Value() float64 {
	if s.value == 0 {
		return 1
	}
	return s.value
}

// Normalize maps a raw mileage into the normalized domain.
func (s ScaleFactor) Normalize(mileage float64) float64 {
	return mileage / s.Value()
}

// DenormalizeSlope converts a slope learned on normalized mileage into raw
// mileage units. The bias needs no conversion since price is never rescaled.
func (s ScaleFactor) DenormalizeSlope(slope float64) float64 {
	return slope / s.Value()
}

// NormalizedSet is the trainer's input: normalized samples plus the factor
// that produced them.
type NormalizedSet struct {
	Samples []NormalizedSample
	Scale   ScaleFactor
}

// Len returns the number of samples.
func (n NormalizedSet) Len() int {
	return len(n.Samples)
}

// Normalize divides every mileage by the arithmetic mean of all mileages.
// When every mileage is zero the mean is zero and a factor of 1 is used.
// Negative values are rejected with ErrInvalidInput.
func Normalize(samples []Sample) (NormalizedSet, error) {
	if len(samples) == 0 {
		return NormalizedSet{}, ErrEmptyDataset
	}

	mileages := make([]float64, len(samples))
	for i, s := range samples {
		if !isFinite(s.Mileage) || s.Mileage < 0 {
			return NormalizedSet{}, invalidf("sample %d: mileage must be a non-negative number, got %g", i, s.Mileage)
		}
		if s.Price < 0 {
			return NormalizedSet{}, invalidf("sample %d: price can't be negative, got %d", i, s.Price)
		}
		mileages[i] = s.Mileage
	}

	scale := ScaleFactor{value: stat.Mean(mileages, nil)}

	out := make([]NormalizedSample, len(samples))
	for i, s := range samples {
		out[i] = NormalizedSample{
			Mileage: scale.Normalize(s.Mileage),
			Price:   float64(s.Price),
		}
	}

	return NormalizedSet{Samples: out, Scale: scale}, nil
}
