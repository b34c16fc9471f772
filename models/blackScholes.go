package models

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Price returns the Black-Scholes price of a European call. Invalid inputs
// are rejected with ErrInvalidParams rather than evaluated.
func Price(spot, strike, riskFreeRate, timeToMaturity, volatility float64) (float64, error) {
	p := OptionParams{
		Spot:           spot,
		Strike:         strike,
		TimeToMaturity: timeToMaturity,
		Volatility:     volatility,
		RiskFreeRate:   riskFreeRate,
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := checkTerms(p); err != nil {
		return 0, err
	}
	d1 := calcD1(p)
	d2 := d1 - volatility*math.Sqrt(timeToMaturity)
	return checkPrice(Call, p, spot*NormCdf(d1)-strike*math.Exp(-riskFreeRate*timeToMaturity)*NormCdf(d2))
}

// PutPrice is the put counterpart of Price.
func PutPrice(spot, strike, riskFreeRate, timeToMaturity, volatility float64) (float64, error) {
	p := OptionParams{
		Spot:           spot,
		Strike:         strike,
		TimeToMaturity: timeToMaturity,
		Volatility:     volatility,
		RiskFreeRate:   riskFreeRate,
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := checkTerms(p); err != nil {
		return 0, err
	}
	d1 := calcD1(p)
	d2 := d1 - volatility*math.Sqrt(timeToMaturity)
	return checkPrice(Put, p, strike*math.Exp(-riskFreeRate*timeToMaturity)*NormCdf(-d2)-spot*NormCdf(-d1))
}

// ExpiryValue is the payoff of an option at expiration for a given underlying price.
func ExpiryValue(optionType OptionType, strike, underlying float64) float64 {
	expiryValue := 0.
	switch optionType {
	case Call:
		expiryValue = underlying - strike
	case Put:
		expiryValue = strike - underlying
	default:
		unknownOptionType(optionType)
	}
	if expiryValue < 0 {
		expiryValue = 0
	}
	return expiryValue
}

// unknownOptionType panics. OptionType values come from the Call and Put
// constants or ParseOptionType, so anything else is a programming error.
func unknownOptionType(optionType OptionType) {
	panic(fmt.Sprintf("models: unknown option type %q", string(optionType)))
}

func calcD1(p OptionParams) float64 {
	return (math.Log(p.Spot/p.Strike) + (p.RiskFreeRate+0.5*p.Volatility*p.Volatility)*p.TimeToMaturity) /
		(p.Volatility * math.Sqrt(p.TimeToMaturity))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// checkTerms rejects valid-looking inputs whose intermediate terms overflow,
// e.g. exp(-rT) for a large negative rate or sigma^2 for a huge sigma.
func checkTerms(p OptionParams) error {
	d1 := calcD1(p)
	discount := math.Exp(-p.RiskFreeRate * p.TimeToMaturity)
	terms := []struct {
		name  string
		value float64
	}{
		{"d1", d1},
		{"d2", d1 - p.Volatility*math.Sqrt(p.TimeToMaturity)},
		{"discount factor", discount},
		{"discounted strike", p.Strike * discount},
	}
	for _, term := range terms {
		if !isFinite(term.value) {
			return errors.Wrapf(ErrInvalidParams, "%s is not finite for %v", term.name, p)
		}
	}
	return nil
}

func checkPrice(optionType OptionType, p OptionParams, price float64) (float64, error) {
	if !isFinite(price) {
		return 0, errors.Wrapf(ErrInvalidParams, "%s price is not finite for %v", optionType, p)
	}
	return price, nil
}

// BlackScholes is an immutable Black-Scholes-Merton model for one contract.
// Every accessor recomputes from the stored parameters. The zero value is not
// a usable model and prices as NaN: build one with NewBlackScholes.
type BlackScholes struct {
	params OptionParams
}

// NewBlackScholes validates p once; the returned model is always priceable
// and both of its prices are finite.
func NewBlackScholes(p OptionParams) (BlackScholes, error) {
	if err := p.Validate(); err != nil {
		return BlackScholes{}, err
	}
	if err := checkTerms(p); err != nil {
		return BlackScholes{}, err
	}
	b := BlackScholes{params: p}
	if _, err := checkPrice(Call, p, b.CallPrice()); err != nil {
		return BlackScholes{}, err
	}
	if _, err := checkPrice(Put, p, b.PutPrice()); err != nil {
		return BlackScholes{}, err
	}
	return b, nil
}

func (b BlackScholes) Params() OptionParams {
	return b.params
}

func (b BlackScholes) D1() float64 {
	return calcD1(b.params)
}

func (b BlackScholes) D2() float64 {
	return b.D1() - b.params.Volatility*math.Sqrt(b.params.TimeToMaturity)
}

func (b BlackScholes) discountedStrike() float64 {
	return b.params.Strike * math.Exp(-b.params.RiskFreeRate*b.params.TimeToMaturity)
}

func (b BlackScholes) CallPrice() float64 {
	return b.params.Spot*NormCdf(b.D1()) - b.discountedStrike()*NormCdf(b.D2())
}

func (b BlackScholes) PutPrice() float64 {
	return b.discountedStrike()*NormCdf(-b.D2()) - b.params.Spot*NormCdf(-b.D1())
}

// Price returns the call or put price. It panics on any other OptionType.
func (b BlackScholes) Price(optionType OptionType) float64 {
	switch optionType {
	case Call:
		return b.CallPrice()
	case Put:
		return b.PutPrice()
	}
	unknownOptionType(optionType)
	return 0
}

func (b BlackScholes) String() string {
	return fmt.Sprintf("BlackScholes(%v)", b.params)
}
