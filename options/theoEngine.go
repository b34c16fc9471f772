// Package options evaluates the pricing model across a ladder of strikes.
package options

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tantralabs/theo/logger"
	"github.com/tantralabs/theo/models"
	"github.com/tantralabs/theo/utils"
)

const (
	DefaultNumStrikes     = 10
	DefaultStrikeInterval = 250.
)

// TheoEngine prices calls and puts for NumStrikes strikes spaced
// StrikeInterval apart around Spot, all sharing one expiry and volatility.
type TheoEngine struct {
	Spot           float64
	TimeToMaturity float64
	Volatility     float64
	RiskFreeRate   float64
	StrikeInterval float64
	NumStrikes     int
}

func NewTheoEngine(spot, timeToMaturity, volatility float64) *TheoEngine {
	return &TheoEngine{
		Spot:           spot,
		TimeToMaturity: timeToMaturity,
		Volatility:     volatility,
		RiskFreeRate:   models.DefaultRiskFreeRate,
		StrikeInterval: DefaultStrikeInterval,
		NumStrikes:     DefaultNumStrikes,
	}
}

// Strikes centers the ladder on spot rounded to the nearest interval, with
// floor(n/2) strikes below it. Strikes that are not positive are skipped.
func (t *TheoEngine) Strikes() []float64 {
	if t.NumStrikes <= 0 || t.StrikeInterval <= 0 {
		return nil
	}
	midStrike := utils.RoundToNearest(t.Spot, t.StrikeInterval)
	minStrike := midStrike - t.StrikeInterval*math.Floor(float64(t.NumStrikes)/2)
	maxStrike := minStrike + t.StrikeInterval*float64(t.NumStrikes-1)

	var strikes []float64
	for _, strike := range utils.Arange(minStrike, maxStrike, t.StrikeInterval) {
		if strike > 0 {
			strikes = append(strikes, strike)
		}
	}
	return strikes
}

// Evaluate returns a call row followed by a put row for every strike.
func (t *TheoEngine) Evaluate() ([]*models.TheoRow, error) {
	if t.NumStrikes <= 0 || t.StrikeInterval <= 0 {
		return nil, errors.Errorf("theo engine needs positive strikes and interval, got %d and %v", t.NumStrikes, t.StrikeInterval)
	}
	strikes := t.Strikes()
	rows := make([]*models.TheoRow, 0, 2*len(strikes))
	for _, strike := range strikes {
		p := models.NewOptionParams(t.Spot, strike, t.TimeToMaturity, t.Volatility).WithRate(t.RiskFreeRate)
		model, err := models.NewBlackScholes(p)
		if err != nil {
			return nil, err
		}
		rows = append(rows, models.NewTheoRow(model, models.Call), models.NewTheoRow(model, models.Put))
	}
	logger.Debugf("Evaluated %d strikes around %v", len(strikes), t.Spot)
	return rows, nil
}
