package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bumped(t *testing.T, p OptionParams, bump func(*OptionParams)) BlackScholes {
	t.Helper()
	bump(&p)
	model, err := NewBlackScholes(p)
	require.NoError(t, err)
	return model
}

func TestGreeksMatchFiniteDifferences(t *testing.T) {
	for _, p := range paramGrid {
		model, err := NewBlackScholes(p)
		require.NoError(t, err)
		g := NewGreeks(model)

		hS := p.Spot * 1e-4
		up := bumped(t, p, func(q *OptionParams) { q.Spot += hS })
		down := bumped(t, p, func(q *OptionParams) { q.Spot -= hS })
		relClose(t, (up.CallPrice()-down.CallPrice())/(2*hS), g.DeltaCall(), 1e-6, "delta call %v", p)
		relClose(t, (up.PutPrice()-down.PutPrice())/(2*hS), g.DeltaPut(), 1e-6, "delta put %v", p)

		hG := p.Spot * 1e-3
		upG := bumped(t, p, func(q *OptionParams) { q.Spot += hG })
		downG := bumped(t, p, func(q *OptionParams) { q.Spot -= hG })
		fdGamma := (upG.CallPrice() - 2*model.CallPrice() + downG.CallPrice()) / (hG * hG)
		assert.InEpsilon(t, fdGamma, g.Gamma(), 1e-4, "gamma %v", p)

		hV := 1e-5
		upV := bumped(t, p, func(q *OptionParams) { q.Volatility += hV })
		downV := bumped(t, p, func(q *OptionParams) { q.Volatility -= hV })
		relClose(t, (upV.CallPrice()-downV.CallPrice())/(2*hV), g.Vega(), 1e-5, "vega %v", p)
		relClose(t, (upV.PutPrice()-downV.PutPrice())/(2*hV), g.Vega(), 1e-5, "vega put %v", p)

		// theta is the decay as calendar time passes, i.e. -dV/dT
		hT := p.TimeToMaturity * 1e-5
		upT := bumped(t, p, func(q *OptionParams) { q.TimeToMaturity += hT })
		downT := bumped(t, p, func(q *OptionParams) { q.TimeToMaturity -= hT })
		relClose(t, -(upT.CallPrice()-downT.CallPrice())/(2*hT), g.ThetaCall(), 1e-5, "theta call %v", p)
		relClose(t, -(upT.PutPrice()-downT.PutPrice())/(2*hT), g.ThetaPut(), 1e-5, "theta put %v", p)

		hR := 1e-6
		upR := bumped(t, p, func(q *OptionParams) { q.RiskFreeRate += hR })
		downR := bumped(t, p, func(q *OptionParams) { q.RiskFreeRate -= hR })
		relClose(t, (upR.CallPrice()-downR.CallPrice())/(2*hR), g.RhoCall(), 1e-5, "rho call %v", p)
		relClose(t, (upR.PutPrice()-downR.PutPrice())/(2*hR), g.RhoPut(), 1e-5, "rho put %v", p)
	}
}

func TestGreeksBounds(t *testing.T) {
	for _, p := range paramGrid {
		model, err := NewBlackScholes(p)
		require.NoError(t, err)
		g := NewGreeks(model)

		assert.True(t, g.DeltaCall() > 0 && g.DeltaCall() < 1, "delta call %v for %v", g.DeltaCall(), p)
		assert.True(t, g.DeltaPut() > -1 && g.DeltaPut() < 0, "delta put %v for %v", g.DeltaPut(), p)
		assert.InDelta(t, 1, g.DeltaCall()-g.DeltaPut(), 1e-12)
		assert.Greater(t, g.Gamma(), 0.)
		assert.Greater(t, g.Vega(), 0.)
		assert.GreaterOrEqual(t, g.RhoCall(), 0.)
		assert.LessOrEqual(t, g.RhoPut(), 0.)
	}
}

func TestGreeksReferenceCase(t *testing.T) {
	model, err := NewBlackScholes(NewOptionParams(100, 100, 1, 0.2))
	require.NoError(t, err)
	g := NewGreeks(model)

	assert.InDelta(t, 0.6368306511756191, g.DeltaCall(), 1e-9)
	assert.InDelta(t, -0.3631693488243809, g.DeltaPut(), 1e-9)
	assert.InDelta(t, 0.018762017345846895, g.Gamma(), 1e-9)
	assert.InDelta(t, 37.52403469169379, g.Vega(), 1e-7)
	assert.InDelta(t, 0.3752403469169379, g.VegaPerPoint(), 1e-9)
	assert.InDelta(t, g.ThetaCall()/365, g.ThetaPerDay(Call), 1e-15)
	assert.InDelta(t, g.ThetaPut()/365, g.ThetaPerDay(Put), 1e-15)
}

func TestGreeksDispatch(t *testing.T) {
	model, err := NewBlackScholes(paramGrid[4])
	require.NoError(t, err)
	g := NewGreeks(model)

	assert.Equal(t, g.DeltaCall(), g.Delta(Call))
	assert.Equal(t, g.DeltaPut(), g.Delta(Put))
	assert.Equal(t, g.ThetaCall(), g.Theta(Call))
	assert.Equal(t, g.ThetaPut(), g.Theta(Put))
	assert.Equal(t, g.RhoCall(), g.Rho(Call))
	assert.Equal(t, g.RhoPut(), g.Rho(Put))
}

func TestSnapshotUsesSameParameters(t *testing.T) {
	model, err := NewBlackScholes(paramGrid[3])
	require.NoError(t, err)
	g := NewGreeks(model)
	snap := g.Snapshot()

	assert.Equal(t, model.CallPrice(), snap.CallPrice)
	assert.Equal(t, model.PutPrice(), snap.PutPrice)
	assert.Equal(t, g.DeltaCall(), snap.DeltaCall)
	assert.Equal(t, g.DeltaPut(), snap.DeltaPut)
	assert.Equal(t, g.Gamma(), snap.Gamma)
	assert.Equal(t, g.Vega(), snap.Vega)
	assert.Equal(t, g.ThetaCall(), snap.ThetaCall)
	assert.Equal(t, g.ThetaPut(), snap.ThetaPut)
	assert.Equal(t, g.RhoCall(), snap.RhoCall)
	assert.Equal(t, g.RhoPut(), snap.RhoPut)
}

func TestNewTheoRow(t *testing.T) {
	model, err := NewBlackScholes(NewOptionParams(100, 100, 1, 0.2))
	require.NoError(t, err)
	g := NewGreeks(model)

	row := NewTheoRow(model, Put)
	assert.Equal(t, Put, row.OptionType)
	assert.Equal(t, 100., row.Strike)
	assert.Equal(t, model.PutPrice(), row.Theo)
	assert.Equal(t, g.DeltaPut(), row.Delta)
	assert.Equal(t, g.ThetaPut(), row.Theta)
	assert.Equal(t, g.RhoPut(), row.Rho)
	assert.Equal(t, g.Gamma(), row.Gamma)
	assert.Equal(t, 0., row.Intrinsic)

	itm, err := NewBlackScholes(NewOptionParams(120, 100, 1, 0.2))
	require.NoError(t, err)
	assert.Equal(t, 20., NewTheoRow(itm, Call).Intrinsic)
	assert.Equal(t, 0., NewTheoRow(itm, Put).Intrinsic)
}

func TestModelAndGreeksShareAcrossGoroutines(t *testing.T) {
	model, err := NewBlackScholes(paramGrid[0])
	require.NoError(t, err)
	g := NewGreeks(model)
	want := g.Snapshot()

	var wg sync.WaitGroup
	results := make([]GreekValues, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				results[i] = g.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "goroutine %d", i)
	}
	assert.Equal(t, paramGrid[0], model.Params())
}
