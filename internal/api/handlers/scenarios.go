package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"climate-pricing/internal/api/models"
	"climate-pricing/internal/config"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// ScenarioHandler lists the scenario presets shipped with the service
type ScenarioHandler struct {
	scenarioDir string
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler() *ScenarioHandler {
	dir := os.Getenv("SCENARIO_DIR")
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, "examples", "scenarios")
		} else {
			dir = "./examples/scenarios"
		}
	}
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}

	return &ScenarioHandler{scenarioDir: dir}
}

// GetScenarioDir returns the scenario directory path (for debugging)
func (h *ScenarioHandler) GetScenarioDir() string {
	return h.scenarioDir
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		log.Printf("ScenarioHandler: failed to read scenario directory %s: %v", h.scenarioDir, err)
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(h.scenarioDir, name))
		if err != nil {
			log.Printf("ScenarioHandler: failed to read %s: %v", name, err)
			continue
		}
		var w struct {
			Scenario config.ScenarioConfig `yaml:"scenario"`
		}
		if err := yaml.Unmarshal(raw, &w); err != nil {
			log.Printf("ScenarioHandler: failed to parse %s: %v", name, err)
			continue
		}

		id := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
		info := models.ScenarioInfo{
			ID:          id,
			Name:        w.Scenario.Name,
			Description: w.Scenario.Description,
			Model:       w.Scenario.Model,
			File:        name,
		}
		if info.Name == "" {
			info.Name = id
		}
		if info.Model == "" {
			info.Model = config.ModelTwoState
		}
		scenarios = append(scenarios, info)
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
