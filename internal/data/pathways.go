// Package data holds the hand-authored illustrative datasets behind the
// narrative charts: climate scenario pathways and geographic beta
// sensitivities. The values are stylized teaching material, not model output,
// and can be overridden from JSON files on disk.
package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ScenarioPathway is one named climate scenario's trajectory over the decade
// grid of a PathwaySet.
type ScenarioPathway struct {
	Name           string    `json:"name"`
	TemperatureC   []float64 `json:"temperature_c"`    // °C above pre-industrial
	EmissionsGtCO2 []float64 `json:"emissions_gtco2"`  // GtCO₂ per year
	GDPLossPct     []float64 `json:"gdp_loss_pct"`     // % deviation from baseline, <= 0
}

// PathwaySet is the full set of scenario trajectories on a shared year grid.
type PathwaySet struct {
	UpdatedAt string            `json:"updated_at,omitempty"` // ISO 8601 timestamp
	Years     []int             `json:"years"`
	Scenarios []ScenarioPathway `json:"scenarios"`
}

func (p *PathwaySet) Validate() error {
	if len(p.Years) == 0 {
		return fmt.Errorf("pathway set has no years")
	}
	for _, s := range p.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("pathway scenario missing name")
		}
		if len(s.TemperatureC) != len(p.Years) || len(s.EmissionsGtCO2) != len(p.Years) || len(s.GDPLossPct) != len(p.Years) {
			return fmt.Errorf("pathway %q series length does not match %d years", s.Name, len(p.Years))
		}
	}
	return nil
}

// DefaultPathways returns the built-in stylized trajectories for the four
// canonical scenarios, 2020 through 2100 in decade steps.
func DefaultPathways() *PathwaySet {
	return &PathwaySet{
		Years: []int{2020, 2030, 2040, 2050, 2060, 2070, 2080, 2090, 2100},
		Scenarios: []ScenarioPathway{
			{
				Name:           "Net Zero 2050",
				TemperatureC:   []float64{1.2, 1.3, 1.4, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5},
				EmissionsGtCO2: []float64{35, 30, 22, 15, 8, 2, 0, 0, 0},
				GDPLossPct:     []float64{0, -0.2, -0.4, -0.6, -0.8, -1.0, -1.2, -1.3, -1.4},
			},
			{
				Name:           "Current Policies",
				TemperatureC:   []float64{1.2, 1.4, 1.6, 1.9, 2.2, 2.5, 2.8, 3.0, 3.2},
				EmissionsGtCO2: []float64{35, 36, 37, 38, 39, 40, 41, 42, 43},
				GDPLossPct:     []float64{0, -0.1, -0.3, -0.7, -1.2, -1.8, -2.5, -3.3, -4.0},
			},
			{
				Name:           "Delayed Transition",
				TemperatureC:   []float64{1.2, 1.4, 1.7, 2.0, 2.4, 2.7, 2.9, 3.0, 3.1},
				EmissionsGtCO2: []float64{35, 36, 35, 30, 25, 18, 10, 5, 0},
				GDPLossPct:     []float64{0, -0.2, -0.5, -1.0, -1.7, -2.4, -3.1, -3.8, -4.5},
			},
			{
				Name:           "Hot House World",
				TemperatureC:   []float64{1.2, 1.5, 1.9, 2.4, 2.9, 3.4, 3.9, 4.3, 4.7},
				EmissionsGtCO2: []float64{35, 38, 42, 45, 47, 49, 50, 51, 52},
				GDPLossPct:     []float64{0, -0.3, -0.8, -1.6, -2.6, -3.7, -5.0, -6.4, -7.9},
			},
		},
	}
}

// LoadPathways loads a pathway set from a JSON file.
func LoadPathways(filePath string) (*PathwaySet, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pathways file: %w", err)
	}

	var set PathwaySet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("failed to parse pathways file: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// SavePathways saves a pathway set to a JSON file.
func SavePathways(set *PathwaySet, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal pathways: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write pathways file: %w", err)
	}

	return nil
}

// GetDefaultPathwaysPath returns the pathways file path, env-overridable.
func GetDefaultPathwaysPath() string {
	if path := os.Getenv("PATHWAYS_FILE"); path != "" {
		return path
	}
	return "./data/pathways.json"
}
