package handlers

import (
	"fmt"
	"net/http"

	"climate-pricing/internal/analysis"
	"climate-pricing/internal/api/models"

	"github.com/gin-gonic/gin"
)

// CurveHandler serves the chart series behind the utility and risk-free
// sections.
type CurveHandler struct{}

// NewCurveHandler creates a new curve handler
func NewCurveHandler() *CurveHandler {
	return &CurveHandler{}
}

// UtilityCurve handles GET /api/v1/utility/curve
func (h *CurveHandler) UtilityCurve(c *gin.Context) {
	req := models.UtilityCurveRequest{
		Kind:           "utility",
		Gamma:          1,
		ConsumptionMin: 0.1,
		ConsumptionMax: 3,
		Points:         200,
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		writeBindError(c, err)
		return
	}

	var (
		points []analysis.CurvePoint
		err    error
	)
	switch req.Kind {
	case "utility":
		points, err = analysis.UtilityCurve(req.ConsumptionMin, req.ConsumptionMax, req.Points, req.Gamma)
	case "marginal":
		points, err = analysis.MarginalUtilityCurve(req.ConsumptionMin, req.ConsumptionMax, req.Points, req.Gamma)
	default:
		writeBindError(c, fmt.Errorf("unsupported curve kind: %q", req.Kind))
		return
	}
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CurveResponse{Points: points})
}

// RiskFreeCurve handles GET /api/v1/riskfree/curve
func (h *CurveHandler) RiskFreeCurve(c *gin.Context) {
	req := models.RiskFreeCurveRequest{
		Delta:     0.02,
		Gamma:     2,
		GrowthMin: -0.05,
		GrowthMax: 0.05,
		Points:    200,
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		writeBindError(c, err)
		return
	}

	points, err := analysis.RiskFreeCurve(req.Delta, req.Gamma, req.GrowthMin, req.GrowthMax, req.Points)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CurveResponse{Points: points})
}
