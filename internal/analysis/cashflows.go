package analysis

import (
	"fmt"

	"climate-pricing/internal/model"
)

// ClimateCashFlowPoint is one year of the hedging-vs-exposed illustration: a
// climate-driven GDP loss path and the cash flows of an asset that pays more
// as losses mount (hedge) against one that pays less (exposed).
type ClimateCashFlowPoint struct {
	Year            int     `json:"year"`
	GDPLossPct      float64 `json:"gdp_loss_pct"` // <= 0, % deviation from baseline
	HedgingCashFlow float64 `json:"hedging_cash_flow"`
	ExposedCashFlow float64 `json:"exposed_cash_flow"`
}

// ClimateCashFlowParams shapes the GDP loss path and the cash-flow swing.
// The defaults reproduce the narrative chart: losses start in 2030 at
// 0.1%/year, cap at 5%, and the two assets swing +/-50% around a unit cash
// flow. All values are illustrative design choices, not estimates.
type ClimateCashFlowParams struct {
	StartYear      int
	EndYear        int
	OnsetYear      int
	LossPerYearPct float64
	MaxLossPct     float64
	Swing          float64
}

func DefaultClimateCashFlowParams() ClimateCashFlowParams {
	return ClimateCashFlowParams{
		StartYear:      2020,
		EndYear:        2050,
		OnsetYear:      2030,
		LossPerYearPct: 0.1,
		MaxLossPct:     5,
		Swing:          0.5,
	}
}

// ClimateCashFlowPaths builds the yearly series. The swing is applied to the
// loss path normalized to [0, 1] over the horizon, so the hedge peaks exactly
// when losses do.
func ClimateCashFlowPaths(p ClimateCashFlowParams) ([]ClimateCashFlowPoint, error) {
	if p.StartYear >= p.EndYear {
		return nil, fmt.Errorf("%w: start_year=%d must be before end_year=%d", model.ErrOutOfRange, p.StartYear, p.EndYear)
	}
	if p.LossPerYearPct < 0 || p.MaxLossPct < 0 {
		return nil, fmt.Errorf("%w: loss parameters must be >= 0", model.ErrOutOfRange)
	}

	n := p.EndYear - p.StartYear + 1
	losses := make([]float64, n)
	maxAbs := 0.0
	for i := 0; i < n; i++ {
		year := p.StartYear + i
		if year >= p.OnsetYear {
			loss := p.LossPerYearPct * float64(year-p.OnsetYear)
			if loss > p.MaxLossPct {
				loss = p.MaxLossPct
			}
			losses[i] = -loss
			if loss > maxAbs {
				maxAbs = loss
			}
		}
	}

	out := make([]ClimateCashFlowPoint, n)
	for i := 0; i < n; i++ {
		norm := 0.0
		if maxAbs > 0 {
			norm = -losses[i] / maxAbs
		}
		out[i] = ClimateCashFlowPoint{
			Year:            p.StartYear + i,
			GDPLossPct:      losses[i],
			HedgingCashFlow: 1 + p.Swing*norm,
			ExposedCashFlow: 1 - p.Swing*norm,
		}
	}
	return out, nil
}
