package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormAgainstErf(t *testing.T) {
	for x := -8.; x <= 8.; x += 0.25 {
		assert.InDelta(t, 0.5*math.Erfc(-x/math.Sqrt2), NormCdf(x), 1e-15, "cdf(%v)", x)
		assert.InDelta(t, math.Exp(-x*x/2)/math.Sqrt(2*math.Pi), NormPdf(x), 1e-15, "pdf(%v)", x)
	}
}

func TestNormKnownValues(t *testing.T) {
	assert.Equal(t, 0.5, NormCdf(0))
	assert.InDelta(t, 0.3989422804014327, NormPdf(0), 1e-15)
	assert.InDelta(t, 0.975, NormCdf(1.959963984540054), 1e-12)
	assert.InDelta(t, 1, NormCdf(3)+NormCdf(-3), 1e-15)
	assert.InDelta(t, 9.865876450376946e-10, NormCdf(-6), 1e-22)
}

func TestNormIsTotal(t *testing.T) {
	assert.Equal(t, 1., NormCdf(math.Inf(1)))
	assert.Equal(t, 0., NormCdf(math.Inf(-1)))
	assert.Equal(t, 0., NormPdf(math.Inf(1)))
	assert.Equal(t, 0., NormPdf(math.Inf(-1)))
}
