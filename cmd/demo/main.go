package main

import (
	"fmt"

	"climate-pricing/internal/analysis"
	"climate-pricing/internal/data"
	"climate-pricing/internal/model"
	"climate-pricing/internal/pricing"
)

// Demo:
// - Walk through the worked examples from the course narrative
// - Show how probabilities, then state-dependent discounting, change the
//   valuation of the same cash flows
func main() {
	fmt.Println("== Expected discounting over two climate states ==")
	twoState := model.TwoStateScenario{
		CashFlowA: 100, // green transition
		RateA:     0.05,
		CashFlowB: 50, // delayed transition
		RateB:     0.10,
		ProbA:     0.5,
	}
	res, err := pricing.PriceTwoState(twoState)
	if err != nil {
		panic(err)
	}
	fmt.Printf("E[CF]=%.2f E[r]=%.3f -> Price=%.2f\n\n", res.ExpectedCashFlow, res.ExpectedRate, res.Price)

	fmt.Println("== Why probabilities matter ==")
	damages := model.TwoStateScenario{
		CashFlowA: 90, // physical damages, no abatement
		RateA:     0.05,
		CashFlowB: 90, // abatement, no physical damages
		RateB:     0.05,
		ProbA:     0.9,
	}
	contribs, err := analysis.ExpectedDiscountingContributions(100, damages)
	if err != nil {
		panic(err)
	}
	for _, ct := range contribs {
		fmt.Printf("state %-4s prob=%.2f impact=%.2f\n", ct.State, ct.Probability, ct.Impact)
	}
	fmt.Println("Most of the price impact comes from the high-probability damage state.")
	fmt.Println()

	fmt.Println("== Why the discount factor must be state-dependent ==")
	kernel := model.SDFScenario{
		CashFlowUp:         90,
		CashFlowDown:       90,
		DiscountFactorUp:   0.90, // abatement happens in good times
		DiscountFactorDown: 1.10, // damages hit in bad times
		ProbUp:             0.5,
	}
	contribs, err = analysis.KernelContributions(100, kernel)
	if err != nil {
		panic(err)
	}
	for _, ct := range contribs {
		fmt.Printf("state %-4s prob=%.2f impact=%.2f\n", ct.State, ct.Probability, ct.Impact)
	}
	fmt.Println("Even at 50/50 odds, the bad state dominates through its higher m.")
	fmt.Println()

	fmt.Println("== Assets that pay in bad times are worth more ==")
	for _, s := range []model.SDFScenario{
		{CashFlowUp: 2, CashFlowDown: 1, DiscountFactorUp: 0.5, DiscountFactorDown: 1.0, ProbUp: 0.5},
		{CashFlowUp: 1, CashFlowDown: 2, DiscountFactorUp: 0.5, DiscountFactorDown: 1.0, ProbUp: 0.5},
	} {
		price, err := pricing.PriceStochasticDiscount(s)
		if err != nil {
			panic(err)
		}
		premium, err := pricing.RiskPremium(s)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-24s price=%.2f risk premium=%+.3f\n",
			model.ProfileFromCashFlows(s.CashFlowUp, s.CashFlowDown), price, premium)
	}
	fmt.Println()

	fmt.Println("== Spatial betas: same baseline, different exposure ==")
	betas := data.DefaultBetaSensitivities()
	for _, loc := range betas.Locations[:3] {
		fmt.Printf("%-12s beta=%.2f -> CF = %.1f\n", loc.City, loc.Beta, pricing.ApplyBeta(loc.Beta, 100))
	}
	fmt.Println()

	fmt.Println("== Abatement trade-off ==")
	for _, pct := range []float64{0, 25, 50, 75, 100} {
		p, err := pricing.TransitionPhysicalTradeoff(pct)
		if err != nil {
			panic(err)
		}
		fmt.Printf("abatement=%5.1f%%  transition=%.3f%% GDP  physical=%.3f%% GDP\n",
			p.AbatementPct, p.TransitionCostPct, p.PhysicalDamagePct)
	}
}
