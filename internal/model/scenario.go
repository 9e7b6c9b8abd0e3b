package model

import (
	"fmt"
	"math"
)

// TwoStateScenario describes a one-period asset under two discrete climate
// states A and B, each with its own cash flow and discount rate.
// Units:
// - Cash flows: currency units at t+1
// - Discount rates: fractions (0.05 = 5%)
// - ProbA: probability of state A, fraction 0..1 (state B gets the remainder)
type TwoStateScenario struct {
	CashFlowA float64
	RateA     float64
	CashFlowB float64
	RateB     float64
	ProbA     float64
}

// ProbB is the implied probability of state B.
func (s TwoStateScenario) ProbB() float64 { return 1 - s.ProbA }

func (s TwoStateScenario) Validate() error {
	// Written as negated range checks so NaN inputs fail too.
	if !(s.ProbA >= 0 && s.ProbA <= 1) {
		return fmt.Errorf("%w: prob_a=%v", ErrInvalidProbability, s.ProbA)
	}
	if !(1+s.RateA > 0) {
		return fmt.Errorf("%w: rate_a=%v", ErrInvalidDiscountRate, s.RateA)
	}
	if !(1+s.RateB > 0) {
		return fmt.Errorf("%w: rate_b=%v", ErrInvalidDiscountRate, s.RateB)
	}
	if !isFinite(s.CashFlowA) || !isFinite(s.CashFlowB) {
		return fmt.Errorf("%w: cash flows must be finite", ErrOutOfRange)
	}
	if !isFinite(s.RateA) || !isFinite(s.RateB) {
		return fmt.Errorf("%w: discount rates must be finite", ErrInvalidDiscountRate)
	}
	return nil
}

// SDFScenario describes a one-period asset priced with a state-dependent
// discount factor over two equally-structured states: "up" (good times, low
// marginal utility) and "down" (bad times, high marginal utility).
// Units:
// - Cash flows: currency units at t+1
// - Discount factors: non-negative state weights (m = marginal value of a
//   payoff in that state)
// - ProbUp: probability of the up state, fraction 0..1
type SDFScenario struct {
	CashFlowUp         float64
	CashFlowDown       float64
	DiscountFactorUp   float64
	DiscountFactorDown float64
	ProbUp             float64
}

// ProbDown is the implied probability of the down state.
func (s SDFScenario) ProbDown() float64 { return 1 - s.ProbUp }

func (s SDFScenario) Validate() error {
	if !(s.ProbUp >= 0 && s.ProbUp <= 1) {
		return fmt.Errorf("%w: prob_up=%v", ErrInvalidProbability, s.ProbUp)
	}
	if !(s.DiscountFactorUp >= 0) || !isFinite(s.DiscountFactorUp) {
		return fmt.Errorf("%w: m_up=%v", ErrInvalidDiscountFactor, s.DiscountFactorUp)
	}
	if !(s.DiscountFactorDown >= 0) || !isFinite(s.DiscountFactorDown) {
		return fmt.Errorf("%w: m_down=%v", ErrInvalidDiscountFactor, s.DiscountFactorDown)
	}
	if !isFinite(s.CashFlowUp) || !isFinite(s.CashFlowDown) {
		return fmt.Errorf("%w: cash flows must be finite", ErrOutOfRange)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
