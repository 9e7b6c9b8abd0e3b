package handlers

import (
	"errors"
	"net/http"
	"os"

	"climate-pricing/internal/analysis"
	"climate-pricing/internal/api/models"
	"climate-pricing/internal/data"

	"github.com/gin-gonic/gin"
)

// ListPathways handles GET /api/v1/pathways
func ListPathways(c *gin.Context) {
	set, err := loadPathwaySet()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PATHWAYS_LOAD_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"years":      set.Years,
		"scenarios":  set.Scenarios,
		"updated_at": set.UpdatedAt,
	})
}

// ListBetas handles GET /api/v1/betas
func ListBetas(c *gin.Context) {
	set, err := loadBetaSet()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "BETAS_LOAD_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"locations":  set.Locations,
		"updated_at": set.UpdatedAt,
		"count":      len(set.Locations),
	})
}

// CashFlowPaths handles GET /api/v1/cashflows
func CashFlowPaths(c *gin.Context) {
	params := analysis.DefaultClimateCashFlowParams()
	req := models.CashFlowPathsRequest{
		StartYear: params.StartYear,
		EndYear:   params.EndYear,
		OnsetYear: params.OnsetYear,
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		writeBindError(c, err)
		return
	}
	params.StartYear = req.StartYear
	params.EndYear = req.EndYear
	params.OnsetYear = req.OnsetYear

	points, err := analysis.ClimateCashFlowPaths(params)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}

// loadPathwaySet prefers the on-disk file and falls back to the built-in
// dataset when none exists.
func loadPathwaySet() (*data.PathwaySet, error) {
	set, err := data.LoadPathways(data.GetDefaultPathwaysPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return data.DefaultPathways(), nil
		}
		return nil, err
	}
	return set, nil
}

func loadBetaSet() (*data.BetaSet, error) {
	set, err := data.LoadBetas(data.GetDefaultBetasPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return data.DefaultBetaSensitivities(), nil
		}
		return nil, err
	}
	return set, nil
}
