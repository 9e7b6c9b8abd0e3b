package pricing

import (
	"testing"

	"climate-pricing/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeoffAnchors(t *testing.T) {
	p, err := TransitionPhysicalTradeoff(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p.TransitionCostPct, 1e-12)
	assert.InDelta(t, 1.0, p.PhysicalDamagePct, 1e-12)

	p, err = TransitionPhysicalTradeoff(100)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p.TransitionCostPct, 1e-12)
	assert.InDelta(t, 0.0, p.PhysicalDamagePct, 1e-12)

	p, err = TransitionPhysicalTradeoff(50)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p.TransitionCostPct, 1e-12)
	assert.InDelta(t, 0.25, p.PhysicalDamagePct, 1e-12)
}

func TestTradeoffMonotone(t *testing.T) {
	prevCost := -1.0
	prevDamage := 2.0
	for pct := 0.0; pct <= 100; pct += 2.5 {
		p, err := TransitionPhysicalTradeoff(pct)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.TransitionCostPct, prevCost, "pct=%v", pct)
		assert.LessOrEqual(t, p.PhysicalDamagePct, prevDamage, "pct=%v", pct)
		assert.GreaterOrEqual(t, p.TransitionCostPct, 0.0)
		assert.GreaterOrEqual(t, p.PhysicalDamagePct, 0.0)
		prevCost = p.TransitionCostPct
		prevDamage = p.PhysicalDamagePct
	}
}

func TestTradeoffOutOfRange(t *testing.T) {
	_, err := TransitionPhysicalTradeoff(-5)
	assert.ErrorIs(t, err, model.ErrOutOfRange)

	_, err = TransitionPhysicalTradeoff(100.1)
	assert.ErrorIs(t, err, model.ErrOutOfRange)
}
