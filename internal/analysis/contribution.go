// Package analysis derives the chart-ready series and per-state
// decompositions that sit on top of the pure pricing formulas: contribution
// of each climate state to the price discount, sampled trade-off and utility
// curves, and the illustrative climate cash-flow paths.
package analysis

import (
	"fmt"
	"math"

	"climate-pricing/internal/model"
)

// Contribution is one state's share of the climate-risk price discount
// relative to a no-climate-change baseline cash flow.
type Contribution struct {
	State        string
	Probability  float64
	CashFlowLoss float64 // baseline cash flow minus the state's cash flow
	Impact       float64 // contribution to the price discount, currency units
}

// ExpectedDiscountingContributions decomposes the discount of the
// unconditional price below the baseline under expected discounting:
// impact(s) = prob(s) * (baselineCF - CF(s)) / (1 + r(s)).
//
// With a baseline of 100, a 10% cash-flow hit in both states, a common 5%
// rate, and probabilities 0.9/0.1, the impacts come out 8.57 and 0.95: almost
// all of the discount is carried by the high-probability state.
func ExpectedDiscountingContributions(baselineCF float64, s model.TwoStateScenario) ([]Contribution, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(baselineCF) || math.IsInf(baselineCF, 0) {
		return nil, fmt.Errorf("%w: baseline cash flow must be finite", model.ErrOutOfRange)
	}
	return []Contribution{
		{
			State:        "A",
			Probability:  s.ProbA,
			CashFlowLoss: baselineCF - s.CashFlowA,
			Impact:       s.ProbA * (baselineCF - s.CashFlowA) / (1 + s.RateA),
		},
		{
			State:        "B",
			Probability:  s.ProbB(),
			CashFlowLoss: baselineCF - s.CashFlowB,
			Impact:       s.ProbB() * (baselineCF - s.CashFlowB) / (1 + s.RateB),
		},
	}, nil
}

// KernelContributions is the state-dependent-discount-factor analog:
// impact(s) = prob(s) * m(s) * (baselineCF - CF(s)).
//
// Same 10% hit and a 50/50 split, but m = 1.10 in the damage state and 0.90
// in the abatement state, gives 5.50 vs 4.50: the bad state dominates even
// without a probability edge.
func KernelContributions(baselineCF float64, s model.SDFScenario) ([]Contribution, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(baselineCF) || math.IsInf(baselineCF, 0) {
		return nil, fmt.Errorf("%w: baseline cash flow must be finite", model.ErrOutOfRange)
	}
	return []Contribution{
		{
			State:        "UP",
			Probability:  s.ProbUp,
			CashFlowLoss: baselineCF - s.CashFlowUp,
			Impact:       s.ProbUp * s.DiscountFactorUp * (baselineCF - s.CashFlowUp),
		},
		{
			State:        "DOWN",
			Probability:  s.ProbDown(),
			CashFlowLoss: baselineCF - s.CashFlowDown,
			Impact:       s.ProbDown() * s.DiscountFactorDown * (baselineCF - s.CashFlowDown),
		},
	}, nil
}

// TotalImpact sums per-state impacts.
func TotalImpact(contributions []Contribution) float64 {
	total := 0.0
	for _, c := range contributions {
		total += c.Impact
	}
	return total
}
