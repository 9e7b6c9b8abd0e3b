package pricing

import (
	"fmt"
	"math"

	"climate-pricing/internal/model"
)

// CRRAUtility is the constant-relative-risk-aversion utility
// u(c) = c^(1-gamma) / (1-gamma), with the log special case at gamma = 1.
// Consumption must be strictly positive.
func CRRAUtility(consumption, gamma float64) (float64, error) {
	if err := validateCRRA(consumption, gamma); err != nil {
		return 0, err
	}
	if gamma == 1 {
		return math.Log(consumption), nil
	}
	return math.Pow(consumption, 1-gamma) / (1 - gamma), nil
}

// CRRAMarginalUtility is u'(c) = c^(-gamma): the extra satisfaction from one
// more unit of consumption. It falls as consumption rises, which is what
// makes payoffs in bad states worth more.
func CRRAMarginalUtility(consumption, gamma float64) (float64, error) {
	if err := validateCRRA(consumption, gamma); err != nil {
		return 0, err
	}
	return math.Pow(consumption, -gamma), nil
}

func validateCRRA(consumption, gamma float64) error {
	if !(consumption > 0) {
		return fmt.Errorf("%w: consumption=%v must be > 0", model.ErrOutOfRange, consumption)
	}
	if !(gamma >= 0) {
		return fmt.Errorf("%w: gamma=%v must be >= 0", model.ErrOutOfRange, gamma)
	}
	return nil
}
