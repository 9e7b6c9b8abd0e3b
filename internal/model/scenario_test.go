package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoStateScenarioValidate(t *testing.T) {
	valid := TwoStateScenario{CashFlowA: 100, RateA: 0.05, CashFlowB: 50, RateB: 0.10, ProbA: 0.5}
	require.NoError(t, valid.Validate())
	assert.InDelta(t, 0.5, valid.ProbB(), 1e-12)

	cases := []struct {
		name   string
		mutate func(*TwoStateScenario)
		want   error
	}{
		{"prob above one", func(s *TwoStateScenario) { s.ProbA = 1.5 }, ErrInvalidProbability},
		{"prob negative", func(s *TwoStateScenario) { s.ProbA = -0.1 }, ErrInvalidProbability},
		{"prob NaN", func(s *TwoStateScenario) { s.ProbA = math.NaN() }, ErrInvalidProbability},
		{"rate at -100%", func(s *TwoStateScenario) { s.RateA = -1 }, ErrInvalidDiscountRate},
		{"rate below -100%", func(s *TwoStateScenario) { s.RateB = -1.2 }, ErrInvalidDiscountRate},
		{"infinite cash flow", func(s *TwoStateScenario) { s.CashFlowB = math.Inf(1) }, ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mutate(&s)
			assert.ErrorIs(t, s.Validate(), tc.want)
		})
	}
}

func TestSDFScenarioValidate(t *testing.T) {
	valid := SDFScenario{CashFlowUp: 2, CashFlowDown: 1, DiscountFactorUp: 0.5, DiscountFactorDown: 1.0, ProbUp: 0.5}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.DiscountFactorDown = -0.5
	assert.ErrorIs(t, bad.Validate(), ErrInvalidDiscountFactor)

	bad = valid
	bad.ProbUp = 2
	assert.ErrorIs(t, bad.Validate(), ErrInvalidProbability)
}

func TestProfileFromCashFlows(t *testing.T) {
	assert.Equal(t, ProfileProCyclical, ProfileFromCashFlows(2, 1))
	assert.Equal(t, ProfileCounterCyclical, ProfileFromCashFlows(1, 2))
	assert.Equal(t, ProfileStateNeutral, ProfileFromCashFlows(1, 1))
}
