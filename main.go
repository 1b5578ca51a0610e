// File: /main.go
package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"anglerhub-api/config"
	"anglerhub-api/database"
	"anglerhub-api/jobs"
	"anglerhub-api/middleware"
	"anglerhub-api/routes"
	"anglerhub-api/services"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize the in-memory database. State lasts for the life of the
	// process only.
	db, err := database.Initialize(database.InMemoryDSN)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed the session dataset
	if err := database.SeedData(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Services
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("Failed to initialize AI service:", err)
	}
	weatherService := services.NewWeatherService(cfg.WeatherTTL, cfg.WeatherLatency)

	// Background jobs
	weatherJob := jobs.NewWeatherRefreshJob(weatherService, cfg.WeatherInterval)
	weatherJob.Start()
	defer weatherJob.Stop()

	// Create router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(routes.SetupCORS())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ValidateJSON())
	router.Use(middleware.ErrorHandler())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, geminiService, weatherService)

	// Start server
	log.Printf("Starting AnglerHub API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
