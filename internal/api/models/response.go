package models

import "climate-pricing/internal/analysis"

// TwoStateResponse is the full expected-discounting breakdown.
type TwoStateResponse struct {
	Price            float64 `json:"price"`
	ExpectedCashFlow float64 `json:"expected_cash_flow"`
	ExpectedRate     float64 `json:"expected_rate"`
	ProbA            float64 `json:"prob_a"`
	ProbB            float64 `json:"prob_b"`

	Contributions []ContributionView `json:"contributions,omitempty"`
}

// SDFResponse is the kernel-pricing result with its diagnostics.
type SDFResponse struct {
	Price                  float64 `json:"price"`
	ExpectedPayoff         float64 `json:"expected_payoff"`
	ExpectedDiscountFactor float64 `json:"expected_discount_factor"`
	RiskFreeRate           float64 `json:"risk_free_rate"`
	ExpectedReturn         float64 `json:"expected_return"`
	RiskPremium            float64 `json:"risk_premium"`
	Profile                string  `json:"profile"`

	Contributions []ContributionView `json:"contributions,omitempty"`
}

// ContributionView is a per-state share of the climate price discount.
type ContributionView struct {
	State        string  `json:"state"`
	Probability  float64 `json:"probability"`
	CashFlowLoss float64 `json:"cash_flow_loss"`
	Impact       float64 `json:"impact"`
}

// TradeoffResponse is a single trade-off point.
type TradeoffResponse struct {
	AbatementPct      float64 `json:"abatement_pct"`
	TransitionCostPct float64 `json:"transition_cost_pct"`
	PhysicalDamagePct float64 `json:"physical_damage_pct"`
}

// TradeoffCurveResponse is the sampled trade-off curve.
type TradeoffCurveResponse struct {
	Points []TradeoffResponse `json:"points"`
}

// CurveResponse is a generic (x, y) chart series.
type CurveResponse struct {
	Points []analysis.CurvePoint `json:"points"`
}

// ScenarioInfo describes a scenario preset on disk.
type ScenarioInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Model       string `json:"model"`
	File        string `json:"file"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
