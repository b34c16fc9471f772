package models

// TheoRow is one line of a theo report: the model inputs and the outputs for
// a single option type.
type TheoRow struct {
	OptionType     OptionType `csv:"type"`
	Strike         float64    `csv:"strike"`
	Spot           float64    `csv:"spot"`
	TimeToMaturity float64    `csv:"time_to_maturity"`
	Volatility     float64    `csv:"volatility"`
	RiskFreeRate   float64    `csv:"risk_free_rate"`
	Theo           float64    `csv:"theo"`
	Intrinsic      float64    `csv:"intrinsic"`
	Delta          float64    `csv:"delta"`
	Gamma          float64    `csv:"gamma"`
	Theta          float64    `csv:"theta"`
	Vega           float64    `csv:"vega"`
	Rho            float64    `csv:"rho"`
}

// NewTheoRow evaluates model b for one side of the contract.
func NewTheoRow(b BlackScholes, optionType OptionType) *TheoRow {
	p := b.Params()
	g := NewGreeks(b)
	return &TheoRow{
		OptionType:     optionType,
		Strike:         p.Strike,
		Spot:           p.Spot,
		TimeToMaturity: p.TimeToMaturity,
		Volatility:     p.Volatility,
		RiskFreeRate:   p.RiskFreeRate,
		Theo:           b.Price(optionType),
		Intrinsic:      ExpiryValue(optionType, p.Strike, p.Spot),
		Delta:          g.Delta(optionType),
		Gamma:          g.Gamma(),
		Theta:          g.Theta(optionType),
		Vega:           g.Vega(),
		Rho:            g.Rho(optionType),
	}
}
