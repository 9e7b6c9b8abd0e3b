package main

import (
	"fmt"
	"log"
	"os"

	"climate-pricing/internal/api/handlers"
	"climate-pricing/internal/api/middleware"
	"climate-pricing/internal/content"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	contentDir := content.GetDefaultContentDir()
	if info, err := os.Stat(contentDir); err == nil && info.IsDir() {
		log.Printf("Content directory found: %s", contentDir)
	} else {
		log.Printf("Content directory not found at: %s (chapters will 404)", contentDir)
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	valuationHandler := handlers.NewValuationHandler()
	tradeoffHandler := handlers.NewTradeoffHandler()
	curveHandler := handlers.NewCurveHandler()
	scenarioHandler := handlers.NewScenarioHandler()
	chapterHandler := handlers.NewChapterHandler(content.NewLibrary(contentDir))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/valuation/two-state", valuationHandler.TwoState)
		api.POST("/valuation/sdf", valuationHandler.StochasticDiscount)

		api.POST("/tradeoff", tradeoffHandler.Point)
		api.GET("/tradeoff/curve", tradeoffHandler.Curve)

		api.GET("/utility/curve", curveHandler.UtilityCurve)
		api.GET("/riskfree/curve", curveHandler.RiskFreeCurve)

		api.GET("/pathways", handlers.ListPathways)
		api.GET("/betas", handlers.ListBetas)
		api.GET("/cashflows", handlers.CashFlowPaths)

		api.GET("/scenarios", scenarioHandler.ListScenarios)

		api.GET("/chapters", chapterHandler.ListChapters)
		api.GET("/chapters/:id", chapterHandler.GetChapter)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	// Check if static directory exists
	if _, err := os.Stat(staticDir); err == nil {
		// Serve static assets
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			// Don't serve index.html for API routes
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
