package analysis

import (
	"testing"

	"climate-pricing/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedDiscountingContributions(t *testing.T) {
	// Narrative example: 90% chance of physical damages (state A), 10% chance
	// of abatement (state B), both states shave 10 off a baseline of 100 at a
	// common 5% rate.
	s := model.TwoStateScenario{
		CashFlowA: 90,
		RateA:     0.05,
		CashFlowB: 90,
		RateB:     0.05,
		ProbA:     0.9,
	}
	contribs, err := ExpectedDiscountingContributions(100, s)
	require.NoError(t, err)
	require.Len(t, contribs, 2)

	assert.InDelta(t, 8.571, contribs[0].Impact, 0.005)
	assert.InDelta(t, 0.952, contribs[1].Impact, 0.005)
	assert.InDelta(t, 10.0, contribs[0].CashFlowLoss, 1e-12)
	// Total equals the full discounted hit: 10 / 1.05.
	assert.InDelta(t, 9.524, TotalImpact(contribs), 0.005)
}

func TestKernelContributions(t *testing.T) {
	// Same 10% hit, 50/50 states, but m = 1.10 in the damage (down) state and
	// 0.90 in the abatement (up) state.
	s := model.SDFScenario{
		CashFlowUp:         90,
		CashFlowDown:       90,
		DiscountFactorUp:   0.90,
		DiscountFactorDown: 1.10,
		ProbUp:             0.5,
	}
	contribs, err := KernelContributions(100, s)
	require.NoError(t, err)
	require.Len(t, contribs, 2)

	assert.InDelta(t, 4.50, contribs[0].Impact, 1e-12)
	assert.InDelta(t, 5.50, contribs[1].Impact, 1e-12)
	assert.Greater(t, contribs[1].Impact, contribs[0].Impact,
		"the high-m damage state should dominate without a probability edge")
}

func TestContributionValidation(t *testing.T) {
	s := model.TwoStateScenario{CashFlowA: 90, CashFlowB: 90, RateA: 0.05, RateB: 0.05, ProbA: 1.2}
	_, err := ExpectedDiscountingContributions(100, s)
	assert.ErrorIs(t, err, model.ErrInvalidProbability)
}
