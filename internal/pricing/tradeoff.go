package pricing

import (
	"fmt"

	"climate-pricing/internal/model"
)

// Shape constants for the abatement trade-off curve. These are fixed
// illustrative design choices, not calibrated estimates: transition cost is
// convex in the abatement fraction and tops out at 2% of GDP at full
// abatement; physical damage declines concavely from 1% of GDP at zero
// abatement.
const (
	TransitionCostMaxPctGDP = 2.0
	PhysicalDamageMaxPctGDP = 1.0
)

// TransitionPhysicalTradeoff evaluates both sides of the abatement trade-off
// at a single abatement level, given in percent [0, 100].
//
// With a = abatement/100:
//
//	transition cost   = 2 * a^2        (% of GDP, non-decreasing in a)
//	physical damage   = (1 - a)^2      (% of GDP, non-increasing in a)
func TransitionPhysicalTradeoff(abatementPct float64) (model.TradeoffPoint, error) {
	if !(abatementPct >= 0 && abatementPct <= 100) {
		return model.TradeoffPoint{}, fmt.Errorf("%w: abatement_pct=%v must be in [0, 100]", model.ErrOutOfRange, abatementPct)
	}
	a := abatementPct / 100
	return model.TradeoffPoint{
		AbatementPct:      abatementPct,
		TransitionCostPct: TransitionCostMaxPctGDP * a * a,
		PhysicalDamagePct: PhysicalDamageMaxPctGDP * (1 - a) * (1 - a),
	}, nil
}
