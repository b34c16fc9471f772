// Package ta wraps the rolling-window indicators of github.com/markcheno/go-talib
// used for realized volatility.
package ta

import (
	"math"

	talib "github.com/markcheno/go-talib"
)

// GetStdDev returns the population standard deviation of each trailing window of
// length values. Like talib, the output has the same length as the input and the
// first length-1 entries are zero. Callers must pass at least length values.
func GetStdDev(values []float64, length int) []float64 {
	return talib.StdDev(values, length, 1)
}

// GetSampleStdDev is GetStdDev with Bessel's correction (n-1 denominator),
// trimmed to the complete windows only.
func GetSampleStdDev(values []float64, length int) []float64 {
	if length < 2 || len(values) < length {
		return nil
	}
	population := GetStdDev(values, length)[length-1:]
	correction := math.Sqrt(float64(length) / float64(length-1))
	out := make([]float64, len(population))
	for i, sd := range population {
		out[i] = sd * correction
	}
	return out
}
