package handlers

import (
	"net/http"

	"climate-pricing/internal/analysis"
	"climate-pricing/internal/api/models"
	"climate-pricing/internal/model"
	"climate-pricing/internal/pricing"

	"github.com/gin-gonic/gin"
)

// ValuationHandler handles scenario valuation requests
type ValuationHandler struct{}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler() *ValuationHandler {
	return &ValuationHandler{}
}

// TwoState handles POST /api/v1/valuation/two-state
func (h *ValuationHandler) TwoState(c *gin.Context) {
	var req models.TwoStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	scenario := model.TwoStateScenario{
		CashFlowA: req.CashFlowA,
		RateA:     req.RateA,
		CashFlowB: req.CashFlowB,
		RateB:     req.RateB,
		ProbA:     req.ProbA,
	}

	res, err := pricing.PriceTwoState(scenario)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	resp := models.TwoStateResponse{
		Price:            res.Price,
		ExpectedCashFlow: res.ExpectedCashFlow,
		ExpectedRate:     res.ExpectedRate,
		ProbA:            scenario.ProbA,
		ProbB:            scenario.ProbB(),
	}

	if req.BaselineCashFlow != nil {
		contribs, err := analysis.ExpectedDiscountingContributions(*req.BaselineCashFlow, scenario)
		if err != nil {
			writeEngineError(c, err)
			return
		}
		resp.Contributions = contributionViews(contribs)
	}

	c.JSON(http.StatusOK, resp)
}

// StochasticDiscount handles POST /api/v1/valuation/sdf
func (h *ValuationHandler) StochasticDiscount(c *gin.Context) {
	var req models.SDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	scenario := model.SDFScenario{
		CashFlowUp:         req.CashFlowUp,
		CashFlowDown:       req.CashFlowDown,
		DiscountFactorUp:   req.DiscountFactorUp,
		DiscountFactorDown: req.DiscountFactorDown,
		ProbUp:             req.ProbUp,
	}

	price, err := pricing.PriceStochasticDiscount(scenario)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	payoff, err := pricing.ExpectedPayoff(scenario)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	em, err := pricing.ExpectedDiscountFactor(scenario)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	rf, err := pricing.RiskFreeRate(scenario)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	ret, err := pricing.ExpectedReturn(scenario)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	resp := models.SDFResponse{
		Price:                  price,
		ExpectedPayoff:         payoff,
		ExpectedDiscountFactor: em,
		RiskFreeRate:           rf,
		ExpectedReturn:         ret,
		RiskPremium:            ret - rf,
		Profile:                string(model.ProfileFromCashFlows(scenario.CashFlowUp, scenario.CashFlowDown)),
	}

	if req.BaselineCashFlow != nil {
		contribs, err := analysis.KernelContributions(*req.BaselineCashFlow, scenario)
		if err != nil {
			writeEngineError(c, err)
			return
		}
		resp.Contributions = contributionViews(contribs)
	}

	c.JSON(http.StatusOK, resp)
}

func contributionViews(contribs []analysis.Contribution) []models.ContributionView {
	out := make([]models.ContributionView, len(contribs))
	for i, ct := range contribs {
		out[i] = models.ContributionView{
			State:        ct.State,
			Probability:  ct.Probability,
			CashFlowLoss: ct.CashFlowLoss,
			Impact:       ct.Impact,
		}
	}
	return out
}
