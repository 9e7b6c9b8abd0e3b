package model

import "errors"

// Validation failures are surfaced to the caller as typed sentinels so the
// API layer can map them to stable error codes. The engine never clamps or
// substitutes defaults for invalid scenario inputs.
var (
	ErrInvalidProbability    = errors.New("probability must be in [0, 1]")
	ErrInvalidDiscountRate   = errors.New("discount rate must satisfy 1+r > 0")
	ErrInvalidDiscountFactor = errors.New("discount factor must be >= 0")
	ErrOutOfRange            = errors.New("value out of range")
	ErrDivisionByZero        = errors.New("division by zero")
)
