package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"climate-pricing/internal/analysis"
	"climate-pricing/internal/config"
	"climate-pricing/internal/model"
	"climate-pricing/internal/pricing"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "price":
		cmdPrice(os.Args[2:])
	case "tradeoff":
		cmdTradeoff(os.Args[2:])
	case "cashflows":
		cmdCashFlows(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli price --config examples/config.yaml")
	fmt.Println("  cli tradeoff --points 101 --out results/tradeoff.csv")
	fmt.Println("  cli cashflows --out results/cashflows.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - price evaluates the scenario in the config under its model (two_state or sdf)")
	fmt.Println("  - tradeoff samples the transition-cost vs physical-damage curve as CSV")
	fmt.Println("  - cashflows writes the hedging vs exposed asset illustration as CSV")
}

func cmdPrice(args []string) {
	fs := flag.NewFlagSet("price", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	name := cfg.Scenario.Name
	if name == "" {
		name = filepath.Base(*cfgPath)
	}

	switch cfg.Scenario.Model {
	case config.ModelTwoState:
		printTwoState(name, cfg.Scenario)
	case config.ModelStochasticDiscount:
		printSDF(name, cfg.Scenario)
	default:
		panic(fmt.Errorf("unsupported scenario model: %q", cfg.Scenario.Model))
	}
}

func printTwoState(name string, sc config.ScenarioConfig) {
	s := sc.ToTwoState()
	res, err := pricing.PriceTwoState(s)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s (expected discounting)\n", name)
	fmt.Printf("  E[CF] = %.4f  E[r] = %.4f\n", res.ExpectedCashFlow, res.ExpectedRate)
	fmt.Printf("  Price = %.4f\n", res.Price)

	if sc.BaselineCashFlow != 0 {
		contribs, err := analysis.ExpectedDiscountingContributions(sc.BaselineCashFlow, s)
		if err != nil {
			panic(err)
		}
		printContributions(contribs)
	}
}

func printSDF(name string, sc config.ScenarioConfig) {
	s := sc.ToSDF()
	price, err := pricing.PriceStochasticDiscount(s)
	if err != nil {
		panic(err)
	}
	payoff, err := pricing.ExpectedPayoff(s)
	if err != nil {
		panic(err)
	}
	rf, err := pricing.RiskFreeRate(s)
	if err != nil {
		panic(err)
	}
	ret, err := pricing.ExpectedReturn(s)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s (state-dependent discount factor)\n", name)
	fmt.Printf("  Profile: %s\n", model.ProfileFromCashFlows(s.CashFlowUp, s.CashFlowDown))
	fmt.Printf("  E[CF] = %.4f  Price = %.4f\n", payoff, price)
	fmt.Printf("  Rf = %.4f  E[R] = %.4f  Risk premium = %.4f\n", rf, ret, ret-rf)

	if sc.BaselineCashFlow != 0 {
		contribs, err := analysis.KernelContributions(sc.BaselineCashFlow, s)
		if err != nil {
			panic(err)
		}
		printContributions(contribs)
	}
}

func printContributions(contribs []analysis.Contribution) {
	fmt.Println("  Contributions to the climate price discount:")
	for _, ct := range contribs {
		fmt.Printf("    state %-4s  prob=%.2f  cf_loss=%.2f  impact=%.4f\n",
			ct.State, ct.Probability, ct.CashFlowLoss, ct.Impact)
	}
	fmt.Printf("    total impact = %.4f\n", analysis.TotalImpact(contribs))
}

func cmdTradeoff(args []string) {
	fs := flag.NewFlagSet("tradeoff", flag.ExitOnError)
	points := fs.Int("points", 101, "Number of samples over [0, 100]%% abatement")
	outPath := fs.String("out", "results/tradeoff.csv", "Output CSV path")
	_ = fs.Parse(args)

	curve, err := analysis.TradeoffCurve(*points)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := analysis.WriteTradeoffCSV(*outPath, curve); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(curve), *outPath)
}

func cmdCashFlows(args []string) {
	fs := flag.NewFlagSet("cashflows", flag.ExitOnError)
	outPath := fs.String("out", "results/cashflows.csv", "Output CSV path")
	_ = fs.Parse(args)

	paths, err := analysis.ClimateCashFlowPaths(analysis.DefaultClimateCashFlowParams())
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := analysis.WriteCashFlowCSV(*outPath, paths); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(paths), *outPath)
}
