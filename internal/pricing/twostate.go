// Package pricing implements the closed-form valuation formulas behind the
// interactive climate asset pricing pages: expected-discounted-cash-flow
// pricing over two discrete states, pricing with a state-dependent discount
// factor, the transition-cost vs physical-damage trade-off curve, and the
// CRRA utility toolkit used for the chart series.
//
// Everything in this package is a deterministic pure function of its scalar
// inputs. Invalid inputs fail with the sentinels in internal/model; nothing
// is clamped.
package pricing

import (
	"climate-pricing/internal/model"
)

// TwoStateResult is the full breakdown of an expected-discounting valuation,
// not just the price, so callers can show the intermediate quantities.
type TwoStateResult struct {
	ExpectedCashFlow float64
	ExpectedRate     float64
	Price            float64
}

// PriceTwoState prices an asset as E[CF] / (1 + E[r]) over states A and B.
//
// The discount rate is probability-weighted the same way as the cash flow,
// which is the "constant discounting" convention the two-state page
// illustrates (the rate is not conditioned on the realized state).
func PriceTwoState(s model.TwoStateScenario) (TwoStateResult, error) {
	if err := s.Validate(); err != nil {
		return TwoStateResult{}, err
	}

	expectedCF := s.ProbA*s.CashFlowA + s.ProbB()*s.CashFlowB
	expectedR := s.ProbA*s.RateA + s.ProbB()*s.RateB

	return TwoStateResult{
		ExpectedCashFlow: expectedCF,
		ExpectedRate:     expectedR,
		Price:            expectedCF / (1 + expectedR),
	}, nil
}

// ApplyBeta scales a baseline cash flow by a scenario sensitivity:
// CF(s) = beta(s) * CF_base. Beta is an illustrative fractional sensitivity,
// typically in (0, 1] for damage scenarios.
func ApplyBeta(beta, baselineCashFlow float64) float64 {
	return beta * baselineCashFlow
}
