package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTwoStateConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
scenario:
  name: green vs delayed
  cash_flow_a: 100
  rate_a: 0.05
  cash_flow_b: 50
  rate_b: 0.10
  prob_a: 0.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModelTwoState, cfg.Scenario.Model, "model should default to two_state")

	s := cfg.Scenario.ToTwoState()
	assert.InDelta(t, 100.0, s.CashFlowA, 1e-12)
	assert.InDelta(t, 0.5, s.ProbA, 1e-12)
}

func TestLoadMergesScenarioFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "preset.yaml", `
scenario:
  name: preset
  model: sdf
  cash_flow_up: 2.0
  cash_flow_down: 1.0
  discount_factor_up: 0.5
  discount_factor_down: 1.0
  prob_up: 0.5
`)
	path := writeFile(t, dir, "config.yaml", `
scenario_file: preset.yaml
scenario:
  cash_flow_down: 3.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModelStochasticDiscount, cfg.Scenario.Model)

	s := cfg.Scenario.ToSDF()
	assert.InDelta(t, 2.0, s.CashFlowUp, 1e-12, "preset value kept")
	assert.InDelta(t, 3.0, s.CashFlowDown, 1e-12, "override applied")
}

func TestLoadRejectsInvalidScenario(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
scenario:
  cash_flow_a: 100
  rate_a: 0.05
  cash_flow_b: 50
  rate_b: 0.10
  prob_a: 1.5
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownModel(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
scenario:
  model: monte_carlo
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported scenario model")
}
