package analysis

import (
	"fmt"

	"climate-pricing/internal/model"
	"climate-pricing/internal/pricing"
)

// CurvePoint is one (x, y) sample of a chart series.
type CurvePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TradeoffCurve samples the transition-cost vs physical-damage trade-off on
// an even abatement grid over [0, 100]. points must be at least 2 so both
// endpoints are included.
func TradeoffCurve(points int) ([]model.TradeoffPoint, error) {
	if points < 2 {
		return nil, fmt.Errorf("%w: points=%d must be >= 2", model.ErrOutOfRange, points)
	}
	out := make([]model.TradeoffPoint, 0, points)
	for i := 0; i < points; i++ {
		pct := 100 * float64(i) / float64(points-1)
		p, err := pricing.TransitionPhysicalTradeoff(pct)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// UtilityCurve samples CRRA utility over a consumption grid.
func UtilityCurve(cMin, cMax float64, points int, gamma float64) ([]CurvePoint, error) {
	return sampleConsumption(cMin, cMax, points, func(c float64) (float64, error) {
		return pricing.CRRAUtility(c, gamma)
	})
}

// MarginalUtilityCurve samples u'(c) over a consumption grid.
func MarginalUtilityCurve(cMin, cMax float64, points int, gamma float64) ([]CurvePoint, error) {
	return sampleConsumption(cMin, cMax, points, func(c float64) (float64, error) {
		return pricing.CRRAMarginalUtility(c, gamma)
	})
}

// RiskFreeCurve samples the linearized risk-free rate over a grid of expected
// consumption growth values.
func RiskFreeCurve(delta, gamma, growthMin, growthMax float64, points int) ([]CurvePoint, error) {
	if points < 2 {
		return nil, fmt.Errorf("%w: points=%d must be >= 2", model.ErrOutOfRange, points)
	}
	if !(growthMin < growthMax) {
		return nil, fmt.Errorf("%w: growth range [%v, %v] is empty", model.ErrOutOfRange, growthMin, growthMax)
	}
	out := make([]CurvePoint, 0, points)
	for i := 0; i < points; i++ {
		g := growthMin + (growthMax-growthMin)*float64(i)/float64(points-1)
		rf, err := pricing.ApproxRiskFreeRate(delta, gamma, g)
		if err != nil {
			return nil, err
		}
		out = append(out, CurvePoint{X: g, Y: rf})
	}
	return out, nil
}

func sampleConsumption(cMin, cMax float64, points int, f func(float64) (float64, error)) ([]CurvePoint, error) {
	if points < 2 {
		return nil, fmt.Errorf("%w: points=%d must be >= 2", model.ErrOutOfRange, points)
	}
	if !(cMin > 0) || !(cMin < cMax) {
		return nil, fmt.Errorf("%w: consumption range [%v, %v] must satisfy 0 < min < max", model.ErrOutOfRange, cMin, cMax)
	}
	out := make([]CurvePoint, 0, points)
	for i := 0; i < points; i++ {
		c := cMin + (cMax-cMin)*float64(i)/float64(points-1)
		y, err := f(c)
		if err != nil {
			return nil, err
		}
		out = append(out, CurvePoint{X: c, Y: y})
	}
	return out, nil
}
