package handlers

import (
	"errors"
	"net/http"

	"climate-pricing/internal/api/models"
	"climate-pricing/internal/model"

	"github.com/gin-gonic/gin"
)

// writeEngineError maps the engine's typed validation failures onto the
// error envelope with stable codes the UI can branch on.
func writeEngineError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	code := "INVALID_REQUEST"

	switch {
	case errors.Is(err, model.ErrInvalidProbability):
		code = "INVALID_PROBABILITY"
	case errors.Is(err, model.ErrInvalidDiscountRate):
		code = "INVALID_DISCOUNT_RATE"
	case errors.Is(err, model.ErrInvalidDiscountFactor):
		code = "INVALID_DISCOUNT_FACTOR"
	case errors.Is(err, model.ErrOutOfRange):
		code = "OUT_OF_RANGE"
	case errors.Is(err, model.ErrDivisionByZero):
		status = http.StatusUnprocessableEntity
		code = "DIVISION_BY_ZERO"
	default:
		status = http.StatusInternalServerError
		code = "INTERNAL_ERROR"
	}

	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}
