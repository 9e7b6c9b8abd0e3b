package models

// TwoStateRequest is the request body for expected-discounting valuation.
// Numeric fields deliberately carry no binding:"required" tags: zero is a
// legal value for cash flows and probabilities, and range validation lives in
// the engine so the API and CLI reject inputs identically.
type TwoStateRequest struct {
	CashFlowA float64 `json:"cf_a"`
	RateA     float64 `json:"r_a"`
	CashFlowB float64 `json:"cf_b"`
	RateB     float64 `json:"r_b"`
	ProbA     float64 `json:"prob_a"`

	// Optional counterfactual cash flow; when set, the response includes the
	// per-state contribution decomposition against it.
	BaselineCashFlow *float64 `json:"baseline_cf,omitempty"`
}

// SDFRequest is the request body for stochastic-discount-factor valuation.
type SDFRequest struct {
	CashFlowUp         float64 `json:"cf_u"`
	CashFlowDown       float64 `json:"cf_d"`
	DiscountFactorUp   float64 `json:"m_u"`
	DiscountFactorDown float64 `json:"m_d"`
	ProbUp             float64 `json:"prob_u"`

	BaselineCashFlow *float64 `json:"baseline_cf,omitempty"`
}

// TradeoffRequest evaluates the abatement trade-off at a single point.
type TradeoffRequest struct {
	AbatementPct float64 `json:"abatement_pct"`
}

// TradeoffCurveRequest samples the trade-off curve.
type TradeoffCurveRequest struct {
	Points int `form:"points"` // default: 101
}

// UtilityCurveRequest samples CRRA utility or marginal utility.
type UtilityCurveRequest struct {
	Kind           string  `form:"kind"`   // "utility" (default) or "marginal"
	Gamma          float64 `form:"gamma"`  // default: 1 (log utility)
	ConsumptionMin float64 `form:"c_min"`  // default: 0.1
	ConsumptionMax float64 `form:"c_max"`  // default: 3
	Points         int     `form:"points"` // default: 200
}

// RiskFreeCurveRequest samples the linearized risk-free rate against expected
// consumption growth.
type RiskFreeCurveRequest struct {
	Delta     float64 `form:"delta"`      // default: 0.02
	Gamma     float64 `form:"gamma"`      // default: 2
	GrowthMin float64 `form:"growth_min"` // default: -0.05
	GrowthMax float64 `form:"growth_max"` // default: 0.05
	Points    int     `form:"points"`     // default: 200
}

// CashFlowPathsRequest shapes the hedging-vs-exposed illustration.
type CashFlowPathsRequest struct {
	StartYear int `form:"start_year"` // default: 2020
	EndYear   int `form:"end_year"`   // default: 2050
	OnsetYear int `form:"onset_year"` // default: 2030
}
