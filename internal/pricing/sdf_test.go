package pricing

import (
	"testing"

	"climate-pricing/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Pricing kernel used by the narrative example: m is low in good times and
// high in bad times, states equally likely.
func proCyclical() model.SDFScenario {
	return model.SDFScenario{
		CashFlowUp:         2.0,
		CashFlowDown:       1.0,
		DiscountFactorUp:   0.5,
		DiscountFactorDown: 1.0,
		ProbUp:             0.5,
	}
}

func counterCyclical() model.SDFScenario {
	s := proCyclical()
	s.CashFlowUp, s.CashFlowDown = s.CashFlowDown, s.CashFlowUp
	return s
}

func TestPriceStochasticDiscountWorkedExamples(t *testing.T) {
	price, err := PriceStochasticDiscount(proCyclical())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, price, 1e-12)

	price, err = PriceStochasticDiscount(counterCyclical())
	require.NoError(t, err)
	assert.InDelta(t, 1.25, price, 1e-12)
}

func TestCovarianceEffect(t *testing.T) {
	// Same expected payoff, but paying in bad times (high m) must price
	// strictly higher than paying in good times.
	good, err := ExpectedPayoff(proCyclical())
	require.NoError(t, err)
	bad, err := ExpectedPayoff(counterCyclical())
	require.NoError(t, err)
	assert.InDelta(t, good, bad, 1e-12)

	pGood, err := PriceStochasticDiscount(proCyclical())
	require.NoError(t, err)
	pBad, err := PriceStochasticDiscount(counterCyclical())
	require.NoError(t, err)
	assert.Greater(t, pBad, pGood)
}

func TestDiagnostics(t *testing.T) {
	s := proCyclical()

	rf, err := RiskFreeRate(s)
	require.NoError(t, err)
	assert.InDelta(t, 1/0.75, rf, 1e-12)

	ret, err := ExpectedReturn(s)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, ret, 1e-12)

	premium, err := RiskPremium(s)
	require.NoError(t, err)
	assert.InDelta(t, 1.5-1/0.75, premium, 1e-12)

	// The hedge earns less than the risk-free rate.
	premium, err = RiskPremium(counterCyclical())
	require.NoError(t, err)
	assert.Less(t, premium, 0.0)
}

func TestDivisionByZero(t *testing.T) {
	s := proCyclical()
	s.DiscountFactorUp = 0
	s.DiscountFactorDown = 0

	_, err := RiskFreeRate(s)
	assert.ErrorIs(t, err, model.ErrDivisionByZero)

	// Zero discount factors also make the price zero.
	_, err = ExpectedReturn(s)
	assert.ErrorIs(t, err, model.ErrDivisionByZero)
}

func TestSDFValidation(t *testing.T) {
	s := proCyclical()
	s.ProbUp = 2
	_, err := PriceStochasticDiscount(s)
	assert.ErrorIs(t, err, model.ErrInvalidProbability)

	s = proCyclical()
	s.DiscountFactorDown = -0.1
	_, err = PriceStochasticDiscount(s)
	assert.ErrorIs(t, err, model.ErrInvalidDiscountFactor)
}

func TestApproxKernel(t *testing.T) {
	m, err := ApproxDiscountFactor(0.03, 2.0, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 0.93, m, 1e-12)

	// Bad times (negative growth) raise m.
	mBad, err := ApproxDiscountFactor(0.03, 2.0, -0.03)
	require.NoError(t, err)
	assert.Greater(t, mBad, m)

	rf, err := ApproxRiskFreeRate(0.02, 2.0, 0.03)
	require.NoError(t, err)
	assert.InDelta(t, 1.08, rf, 1e-12)

	_, err = ApproxDiscountFactor(0.03, -1, 0.02)
	assert.ErrorIs(t, err, model.ErrOutOfRange)
}
