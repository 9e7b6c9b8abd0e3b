package analysis

import (
	"testing"

	"climate-pricing/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClimateCashFlowPathsDefaults(t *testing.T) {
	points, err := ClimateCashFlowPaths(DefaultClimateCashFlowParams())
	require.NoError(t, err)
	require.Len(t, points, 31)

	// No losses before onset; hedge and exposed both sit at 1.
	first := points[0]
	assert.Equal(t, 2020, first.Year)
	assert.InDelta(t, 0.0, first.GDPLossPct, 1e-12)
	assert.InDelta(t, 1.0, first.HedgingCashFlow, 1e-12)
	assert.InDelta(t, 1.0, first.ExposedCashFlow, 1e-12)

	// Losses accumulate at 0.1%/year from 2030: 2.0% by 2050.
	last := points[30]
	assert.Equal(t, 2050, last.Year)
	assert.InDelta(t, -2.0, last.GDPLossPct, 1e-12)
	assert.InDelta(t, 1.5, last.HedgingCashFlow, 1e-12)
	assert.InDelta(t, 0.5, last.ExposedCashFlow, 1e-12)

	// GDP losses only ever deepen; hedge and exposed stay mirrored around 1.
	for i := 1; i < len(points); i++ {
		assert.LessOrEqual(t, points[i].GDPLossPct, points[i-1].GDPLossPct)
		assert.InDelta(t, 2.0, points[i].HedgingCashFlow+points[i].ExposedCashFlow, 1e-12)
	}
}

func TestClimateCashFlowPathsClipsAtMaxLoss(t *testing.T) {
	p := DefaultClimateCashFlowParams()
	p.EndYear = 2100
	points, err := ClimateCashFlowPaths(p)
	require.NoError(t, err)

	last := points[len(points)-1]
	assert.InDelta(t, -5.0, last.GDPLossPct, 1e-12)
	assert.InDelta(t, 1.5, last.HedgingCashFlow, 1e-12)
}

func TestClimateCashFlowPathsValidation(t *testing.T) {
	p := DefaultClimateCashFlowParams()
	p.StartYear, p.EndYear = 2050, 2020
	_, err := ClimateCashFlowPaths(p)
	assert.ErrorIs(t, err, model.ErrOutOfRange)
}
