package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// BetaSensitivity maps a location to an illustrative fractional cash-flow
// sensitivity: CF(s) = beta * CF_base in the damage scenario at that spot.
type BetaSensitivity struct {
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Beta float64 `json:"beta"`
}

// BetaSet is a collection of location sensitivities.
type BetaSet struct {
	UpdatedAt string            `json:"updated_at,omitempty"` // ISO 8601 timestamp
	Locations []BetaSensitivity `json:"locations"`
}

// DefaultBetaSensitivities returns the built-in city table used by the
// spatial finance section. Betas are hand-picked to make coastal and tropical
// locations visibly more exposed; they are not estimates.
func DefaultBetaSensitivities() *BetaSet {
	return &BetaSet{
		Locations: []BetaSensitivity{
			{City: "Caribbean", Lat: 14.6, Lon: -61.0, Beta: 0.55},
			{City: "New York", Lat: 40.7, Lon: -74.0, Beta: 0.20},
			{City: "Sydney", Lat: -33.9, Lon: 151.2, Beta: 0.35},
			{City: "Singapore", Lat: 1.3, Lon: 103.8, Beta: 0.40},
			{City: "Tokyo", Lat: 35.7, Lon: 139.7, Beta: 0.15},
			{City: "Mexico City", Lat: 19.4, Lon: -99.1, Beta: 0.30},
			{City: "Shanghai", Lat: 30.0, Lon: 120.9, Beta: 0.45},
			{City: "London", Lat: 51.5, Lon: -0.1, Beta: 0.10},
			{City: "Dar es Salaam", Lat: -4.0, Lon: 39.7, Beta: 0.50},
			{City: "Guangzhou", Lat: 23.1, Lon: 113.3, Beta: 0.60},
			{City: "Nairobi", Lat: -1.3, Lon: 36.8, Beta: 0.40},
			{City: "Bangkok", Lat: 13.7, Lon: 100.5, Beta: 0.50},
			{City: "Delhi", Lat: 28.6, Lon: 77.2, Beta: 0.30},
			{City: "Rio de Janeiro", Lat: -22.9, Lon: -43.2, Beta: 0.50},
			{City: "Tunis", Lat: 34.0, Lon: -6.8, Beta: 0.25},
			{City: "Manila", Lat: 31.2, Lon: 121.5, Beta: 0.65},
			{City: "San Francisco", Lat: 37.8, Lon: -122.4, Beta: 0.20},
			{City: "Beijing", Lat: 39.9, Lon: 116.4, Beta: 0.30},
			{City: "Moscow", Lat: 55.8, Lon: 37.6, Beta: 0.10},
			{City: "Fiji", Lat: -17.7, Lon: 178.4, Beta: 0.60},
		},
	}
}

// LoadBetas loads beta sensitivities from a JSON file.
func LoadBetas(filePath string) (*BetaSet, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read betas file: %w", err)
	}

	var set BetaSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("failed to parse betas file: %w", err)
	}

	return &set, nil
}

// SaveBetas saves beta sensitivities to a JSON file.
func SaveBetas(set *BetaSet, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal betas: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write betas file: %w", err)
	}

	return nil
}

// GetDefaultBetasPath returns the betas file path, env-overridable.
func GetDefaultBetasPath() string {
	if path := os.Getenv("BETAS_FILE"); path != "" {
		return path
	}
	return "./data/betas.json"
}
