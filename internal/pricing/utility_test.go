package pricing

import (
	"math"
	"testing"

	"climate-pricing/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRRAUtility(t *testing.T) {
	// gamma = 1 is the log special case.
	u, err := CRRAUtility(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), u, 1e-12)

	// gamma = 2: u(c) = c^-1 / -1.
	u, err = CRRAUtility(2, 2)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, u, 1e-12)

	mu, err := CRRAMarginalUtility(2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, mu, 1e-12)
}

func TestCRRAMarginalUtilityDeclines(t *testing.T) {
	prev := math.Inf(1)
	for c := 0.5; c <= 3; c += 0.25 {
		mu, err := CRRAMarginalUtility(c, 2)
		require.NoError(t, err)
		assert.Less(t, mu, prev, "c=%v", c)
		prev = mu
	}
}

func TestCRRAValidation(t *testing.T) {
	_, err := CRRAUtility(0, 2)
	assert.ErrorIs(t, err, model.ErrOutOfRange)

	_, err = CRRAUtility(-1, 2)
	assert.ErrorIs(t, err, model.ErrOutOfRange)

	_, err = CRRAMarginalUtility(1, -0.5)
	assert.ErrorIs(t, err, model.ErrOutOfRange)
}
