package data

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPathways(t *testing.T) {
	set := DefaultPathways()
	require.NoError(t, set.Validate())
	assert.Len(t, set.Years, 9)
	assert.Len(t, set.Scenarios, 4)

	// Hot House World is the hottest and most damaging path by 2100.
	var hotHouse, netZero ScenarioPathway
	for _, s := range set.Scenarios {
		switch s.Name {
		case "Hot House World":
			hotHouse = s
		case "Net Zero 2050":
			netZero = s
		}
	}
	last := len(set.Years) - 1
	assert.Greater(t, hotHouse.TemperatureC[last], netZero.TemperatureC[last])
	assert.Less(t, hotHouse.GDPLossPct[last], netZero.GDPLossPct[last])
}

func TestPathwaysRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathways.json")
	require.NoError(t, SavePathways(DefaultPathways(), path))

	loaded, err := LoadPathways(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPathways().Years, loaded.Years)
	assert.Equal(t, DefaultPathways().Scenarios, loaded.Scenarios)
}

func TestPathwaysValidate(t *testing.T) {
	set := DefaultPathways()
	set.Scenarios[0].TemperatureC = set.Scenarios[0].TemperatureC[:3]
	assert.Error(t, set.Validate())
}

func TestDefaultBetaSensitivities(t *testing.T) {
	set := DefaultBetaSensitivities()
	assert.Len(t, set.Locations, 20)
	for _, loc := range set.Locations {
		assert.NotEmpty(t, loc.City)
		assert.GreaterOrEqual(t, loc.Beta, 0.0)
		assert.LessOrEqual(t, loc.Beta, 1.0)
	}
}

func TestBetasRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "betas.json")
	require.NoError(t, SaveBetas(DefaultBetaSensitivities(), path))

	loaded, err := LoadBetas(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultBetaSensitivities().Locations, loaded.Locations)
}
