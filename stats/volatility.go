// Package stats estimates realized volatility from a series of closing prices.
package stats

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tantralabs/theo/ta"
	"gonum.org/v1/gonum/stat"
)

// DefaultWindow is the number of trading periods per year used to annualize.
const DefaultWindow = 252

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrInvalidWindow    = errors.New("invalid window")
)

// LogReturns returns ln(p[i]/p[i-1]) for i = 1..n-1. The first price has no
// prior price and therefore no return: the result has exactly len(prices)-1
// entries and never carries a placeholder for it.
func LogReturns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, errors.Wrapf(ErrInsufficientData, "need at least 2 prices, got %d", len(prices))
	}
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return nil, errors.Wrapf(ErrInvalidPrice, "price %v at index %d", p, i)
		}
	}
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns[i-1] = math.Log(prices[i] / prices[i-1])
	}
	return returns, nil
}

// HistoricalVolatility annualizes the sample standard deviation of the log
// returns of prices: sqrt(window) * stddev. A series with a single return has
// no dispersion and yields 0.
func HistoricalVolatility(prices []float64, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.Wrapf(ErrInvalidWindow, "window must be positive, got %d", window)
	}
	returns, err := LogReturns(prices)
	if err != nil {
		return 0, err
	}
	if len(returns) < 2 {
		return 0, nil
	}
	return math.Sqrt(float64(window)) * stat.StdDev(returns, nil), nil
}

// RollingVolatility computes HistoricalVolatility over every trailing run of
// lookback returns, oldest first. The result has len(prices)-lookback entries.
// talib floors a per-period variance below 1e-14 to 0; those windows are
// recomputed directly so every entry agrees with HistoricalVolatility.
func RollingVolatility(prices []float64, lookback, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.Wrapf(ErrInvalidWindow, "window must be positive, got %d", window)
	}
	if lookback < 2 {
		return nil, errors.Wrapf(ErrInvalidWindow, "lookback must be at least 2, got %d", lookback)
	}
	returns, err := LogReturns(prices)
	if err != nil {
		return nil, err
	}
	if len(returns) < lookback {
		return nil, errors.Wrapf(ErrInsufficientData, "need %d returns for lookback, got %d", lookback, len(returns))
	}
	vols := ta.GetSampleStdDev(returns, lookback)
	annualize := math.Sqrt(float64(window))
	for i := range vols {
		if vols[i] == 0 {
			vols[i] = stat.StdDev(returns[i:i+lookback], nil)
		}
		vols[i] *= annualize
	}
	return vols, nil
}
