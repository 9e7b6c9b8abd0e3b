package pricing

import (
	"fmt"

	"climate-pricing/internal/model"
)

// PriceStochasticDiscount prices an asset as E[m * CF] over the up and down
// states: prob_up*m_up*cf_up + prob_down*m_down*cf_down.
func PriceStochasticDiscount(s model.SDFScenario) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s.ProbUp*s.DiscountFactorUp*s.CashFlowUp +
		s.ProbDown()*s.DiscountFactorDown*s.CashFlowDown, nil
}

// ExpectedPayoff is E[CF] under the scenario's state probabilities.
func ExpectedPayoff(s model.SDFScenario) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s.ProbUp*s.CashFlowUp + s.ProbDown()*s.CashFlowDown, nil
}

// ExpectedDiscountFactor is E[m] under the scenario's state probabilities.
func ExpectedDiscountFactor(s model.SDFScenario) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s.ProbUp*s.DiscountFactorUp + s.ProbDown()*s.DiscountFactorDown, nil
}

// RiskFreeRate is the gross return 1/E[m] implied by the pricing kernel.
func RiskFreeRate(s model.SDFScenario) (float64, error) {
	em, err := ExpectedDiscountFactor(s)
	if err != nil {
		return 0, err
	}
	if em == 0 {
		return 0, fmt.Errorf("%w: expected discount factor is zero", model.ErrDivisionByZero)
	}
	return 1 / em, nil
}

// ExpectedReturn is E[CF] / price.
func ExpectedReturn(s model.SDFScenario) (float64, error) {
	price, err := PriceStochasticDiscount(s)
	if err != nil {
		return 0, err
	}
	if price == 0 {
		return 0, fmt.Errorf("%w: price is zero", model.ErrDivisionByZero)
	}
	payoff, err := ExpectedPayoff(s)
	if err != nil {
		return 0, err
	}
	return payoff / price, nil
}

// RiskPremium is the expected return in excess of the risk-free rate.
// Positive for assets that pay more in good times (positive covariance of CF
// with consumption, negative with m), negative for climate hedges.
func RiskPremium(s model.SDFScenario) (float64, error) {
	ret, err := ExpectedReturn(s)
	if err != nil {
		return 0, err
	}
	rf, err := RiskFreeRate(s)
	if err != nil {
		return 0, err
	}
	return ret - rf, nil
}

// ApproxDiscountFactor is the linearized CRRA pricing kernel
// m ≈ 1 - delta - gamma*consumptionGrowth, where delta is the rate of time
// preference and gamma the coefficient of relative risk aversion.
func ApproxDiscountFactor(delta, gamma, consumptionGrowth float64) (float64, error) {
	if !(gamma >= 0) {
		return 0, fmt.Errorf("%w: gamma=%v must be >= 0", model.ErrOutOfRange, gamma)
	}
	return 1 - delta - gamma*consumptionGrowth, nil
}

// ApproxRiskFreeRate is the linearized gross risk-free rate
// Rf ≈ 1 + delta + gamma*E[consumption growth]. Higher expected growth means
// a higher risk-free rate.
func ApproxRiskFreeRate(delta, gamma, expectedConsumptionGrowth float64) (float64, error) {
	if !(gamma >= 0) {
		return 0, fmt.Errorf("%w: gamma=%v must be >= 0", model.ErrOutOfRange, gamma)
	}
	return 1 + delta + gamma*expectedConsumptionGrowth, nil
}
