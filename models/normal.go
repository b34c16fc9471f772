package models

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Standard normal N(0, 1). Only CDF and Prob are used, so no random source is set.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// NormCdf returns P(Z <= x) for a standard normal Z.
func NormCdf(x float64) float64 {
	return stdNormal.CDF(x)
}

// NormPdf returns the standard normal density at x.
func NormPdf(x float64) float64 {
	return stdNormal.Prob(x)
}
