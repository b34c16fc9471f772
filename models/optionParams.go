package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// DefaultRiskFreeRate is used by NewOptionParams when no rate is given.
const DefaultRiskFreeRate = 0.05

// ErrInvalidParams is returned whenever option parameters cannot be priced.
var ErrInvalidParams = errors.New("invalid option parameters")

type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// ParseOptionType accepts "call", "c", "put" or "p" in any case.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return "", errors.Errorf("unknown option type %q", s)
}

// OptionParams holds the inputs of a European option under Black-Scholes-Merton.
type OptionParams struct {
	Spot           float64 `structs:"spot"`             // Underlying price
	Strike         float64 `structs:"strike"`           // Exercise price
	TimeToMaturity float64 `structs:"time_to_maturity"` // Years until expiry
	Volatility     float64 `structs:"volatility"`       // Annualized std dev of log returns
	RiskFreeRate   float64 `structs:"risk_free_rate"`   // Continuously compounded, may be negative
}

func NewOptionParams(spot, strike, timeToMaturity, volatility float64) OptionParams {
	return OptionParams{
		Spot:           spot,
		Strike:         strike,
		TimeToMaturity: timeToMaturity,
		Volatility:     volatility,
		RiskFreeRate:   DefaultRiskFreeRate,
	}
}

// WithRate returns a copy of p using rate r.
func (p OptionParams) WithRate(r float64) OptionParams {
	p.RiskFreeRate = r
	return p
}

// Validate reports the first parameter that would make the closed-form
// formulas divide by zero or take the log of a non-positive number.
func (p OptionParams) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"spot", p.Spot},
		{"strike", p.Strike},
		{"time to maturity", p.TimeToMaturity},
		{"volatility", p.Volatility},
	}
	for _, f := range positive {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return errors.Wrapf(ErrInvalidParams, "%s must be positive and finite, got %v", f.name, f.value)
		}
	}
	if math.IsNaN(p.RiskFreeRate) || math.IsInf(p.RiskFreeRate, 0) {
		return errors.Wrapf(ErrInvalidParams, "risk free rate must be finite, got %v", p.RiskFreeRate)
	}
	return nil
}

func (p OptionParams) String() string {
	return fmt.Sprintf("S=%v K=%v T=%v sigma=%v r=%v", p.Spot, p.Strike, p.TimeToMaturity, p.Volatility, p.RiskFreeRate)
}
