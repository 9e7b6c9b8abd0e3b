package handlers

import (
	"net/http"

	"climate-pricing/internal/analysis"
	"climate-pricing/internal/api/models"
	"climate-pricing/internal/model"
	"climate-pricing/internal/pricing"

	"github.com/gin-gonic/gin"
)

// TradeoffHandler handles abatement trade-off requests
type TradeoffHandler struct{}

// NewTradeoffHandler creates a new trade-off handler
func NewTradeoffHandler() *TradeoffHandler {
	return &TradeoffHandler{}
}

// Point handles POST /api/v1/tradeoff
func (h *TradeoffHandler) Point(c *gin.Context) {
	var req models.TradeoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	p, err := pricing.TransitionPhysicalTradeoff(req.AbatementPct)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, tradeoffView(p))
}

// Curve handles GET /api/v1/tradeoff/curve
func (h *TradeoffHandler) Curve(c *gin.Context) {
	var req models.TradeoffCurveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if req.Points == 0 {
		req.Points = 101
	}

	curve, err := analysis.TradeoffCurve(req.Points)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	resp := models.TradeoffCurveResponse{Points: make([]models.TradeoffResponse, len(curve))}
	for i, p := range curve {
		resp.Points[i] = tradeoffView(p)
	}
	c.JSON(http.StatusOK, resp)
}

func tradeoffView(p model.TradeoffPoint) models.TradeoffResponse {
	return models.TradeoffResponse{
		AbatementPct:      p.AbatementPct,
		TransitionCostPct: p.TransitionCostPct,
		PhysicalDamagePct: p.PhysicalDamagePct,
	}
}
