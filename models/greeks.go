package models

import (
	"math"
)

// Pricer is anything that exposes a Black-Scholes parameter point with its
// d1/d2 terms and prices. BlackScholes satisfies it.
type Pricer interface {
	Params() OptionParams
	D1() float64
	D2() float64
	CallPrice() float64
	PutPrice() float64
}

// Greeks derives sensitivities from a Pricer. It holds no state of its own,
// so prices and Greeks always come from the same parameter snapshot.
// The zero value has no pricer; build one with NewGreeks.
type Greeks struct {
	pricer Pricer
}

// NewGreeks panics when p is nil.
func NewGreeks(p Pricer) Greeks {
	if p == nil {
		panic("models: NewGreeks needs a Pricer")
	}
	return Greeks{pricer: p}
}

// GreekValues is a flat snapshot of prices and Greeks for both sides of a contract.
type GreekValues struct {
	CallPrice float64 `structs:"call_price" json:"call_price"`
	PutPrice  float64 `structs:"put_price" json:"put_price"`
	DeltaCall float64 `structs:"delta_call" json:"delta_call"`
	DeltaPut  float64 `structs:"delta_put" json:"delta_put"`
	Gamma     float64 `structs:"gamma" json:"gamma"`
	Vega      float64 `structs:"vega" json:"vega"`
	ThetaCall float64 `structs:"theta_call" json:"theta_call"`
	ThetaPut  float64 `structs:"theta_put" json:"theta_put"`
	RhoCall   float64 `structs:"rho_call" json:"rho_call"`
	RhoPut    float64 `structs:"rho_put" json:"rho_put"`
}

func (g Greeks) sqrtT() float64 {
	return math.Sqrt(g.pricer.Params().TimeToMaturity)
}

func (g Greeks) discountedStrike() float64 {
	p := g.pricer.Params()
	return p.Strike * math.Exp(-p.RiskFreeRate*p.TimeToMaturity)
}

// Change in price wrt. a 1 unit change in spot
func (g Greeks) DeltaCall() float64 {
	return NormCdf(g.pricer.D1())
}

func (g Greeks) DeltaPut() float64 {
	return -NormCdf(-g.pricer.D1())
}

// Gamma is the change in delta wrt. spot, identical for calls and puts.
func (g Greeks) Gamma() float64 {
	p := g.pricer.Params()
	return NormPdf(g.pricer.D1()) / (p.Spot * p.Volatility * g.sqrtT())
}

// Vega is the change in price wrt. a 1.0 (100 point) change in volatility.
func (g Greeks) Vega() float64 {
	return g.pricer.Params().Spot * NormPdf(g.pricer.D1()) * g.sqrtT()
}

// Theta is the change in price wrt. calendar time, per year.
func (g Greeks) ThetaCall() float64 {
	p := g.pricer.Params()
	return g.thetaDecay() - p.RiskFreeRate*g.discountedStrike()*NormCdf(g.pricer.D2())
}

func (g Greeks) ThetaPut() float64 {
	p := g.pricer.Params()
	return g.thetaDecay() + p.RiskFreeRate*g.discountedStrike()*NormCdf(-g.pricer.D2())
}

func (g Greeks) thetaDecay() float64 {
	p := g.pricer.Params()
	return -p.Spot * NormPdf(g.pricer.D1()) * p.Volatility / (2 * g.sqrtT())
}

func (g Greeks) RhoCall() float64 {
	p := g.pricer.Params()
	return p.TimeToMaturity * g.discountedStrike() * NormCdf(g.pricer.D2())
}

func (g Greeks) RhoPut() float64 {
	p := g.pricer.Params()
	return -p.TimeToMaturity * g.discountedStrike() * NormCdf(-g.pricer.D2())
}

// Delta, Theta and Rho pick the call or put value and panic on any other
// OptionType, like BlackScholes.Price.
func (g Greeks) Delta(optionType OptionType) float64 {
	switch optionType {
	case Call:
		return g.DeltaCall()
	case Put:
		return g.DeltaPut()
	}
	unknownOptionType(optionType)
	return 0
}

func (g Greeks) Theta(optionType OptionType) float64 {
	switch optionType {
	case Call:
		return g.ThetaCall()
	case Put:
		return g.ThetaPut()
	}
	unknownOptionType(optionType)
	return 0
}

func (g Greeks) Rho(optionType OptionType) float64 {
	switch optionType {
	case Call:
		return g.RhoCall()
	case Put:
		return g.RhoPut()
	}
	unknownOptionType(optionType)
	return 0
}

// ThetaPerDay quotes theta as the change over one calendar day.
func (g Greeks) ThetaPerDay(optionType OptionType) float64 {
	return g.Theta(optionType) / 365
}

// VegaPerPoint quotes vega per 1% move in volatility.
func (g Greeks) VegaPerPoint() float64 {
	return g.Vega() / 100
}

func (g Greeks) Snapshot() GreekValues {
	return GreekValues{
		CallPrice: g.pricer.CallPrice(),
		PutPrice:  g.pricer.PutPrice(),
		DeltaCall: g.DeltaCall(),
		DeltaPut:  g.DeltaPut(),
		Gamma:     g.Gamma(),
		Vega:      g.Vega(),
		ThetaCall: g.ThetaCall(),
		ThetaPut:  g.ThetaPut(),
		RhoCall:   g.RhoCall(),
		RhoPut:    g.RhoPut(),
	}
}
