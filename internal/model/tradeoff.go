package model

// TradeoffPoint is one point on the transition-cost vs physical-damage curve,
// both expressed as % of GDP at a given abatement level.
type TradeoffPoint struct {
	AbatementPct      float64
	TransitionCostPct float64
	PhysicalDamagePct float64
}
