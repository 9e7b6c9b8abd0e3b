package analysis

import (
	"encoding/csv"
	"os"
	"strconv"

	"climate-pricing/internal/model"
)

func WriteTradeoffCSV(path string, curve []model.TradeoffPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"abatement_pct",
		"transition_cost_pct_gdp",
		"physical_damage_pct_gdp",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range curve {
		row := []string{
			fmtFloat(p.AbatementPct),
			fmtFloat(p.TransitionCostPct),
			fmtFloat(p.PhysicalDamagePct),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func WriteCashFlowCSV(path string, points []ClimateCashFlowPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"gdp_loss_pct",
		"hedging_cash_flow",
		"exposed_cash_flow",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range points {
		row := []string{
			strconv.Itoa(p.Year),
			fmtFloat(p.GDPLossPct),
			fmtFloat(p.HedgingCashFlow),
			fmtFloat(p.ExposedCashFlow),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
