package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/tourcopy/tourism-content-be/internal/core/llm"
	"github.com/tourcopy/tourism-content-be/internal/core/upload"
	"github.com/tourcopy/tourism-content-be/internal/modules/content/handlers"
	"github.com/tourcopy/tourism-content-be/internal/modules/content/services"
	"github.com/tourcopy/tourism-content-be/internal/shared/config"
	"github.com/tourcopy/tourism-content-be/internal/shared/utils"

	_ "github.com/tourcopy/tourism-content-be/cmd/api/docs"
)

// @title Tourism AI Content Generator API
// @version 1.0
// @description Marketing copy generator for tourism businesses: static templates or an external AI provider
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /api
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger()
	log.Printf("🚀 Starting content-api on port %s", cfg.Port)

	// Init upload store + orphan sweeper
	store, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}
	sweeper, err := upload.NewSweeper(store, "*/10 * * * *", time.Hour)
	if err != nil {
		log.Fatalf("Failed to initialize upload sweeper: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	// Init generation services; the AI pipeline only exists when a provider
	// is configured
	var pipeline *services.Pipeline
	if cfg.ContentMode == "ai" {
		pipeline = services.NewPipeline(llm.NewService())
	} else {
		log.Printf("📦 Using local template generator (mode: %s)", cfg.ContentMode)
	}

	// Init handlers
	contentHandler := handlers.NewContentHandler(cfg.ContentMode, pipeline, services.NewAssembler(), store)
	healthHandler := handlers.NewHealthHandler(cfg.ContentMode)

	// Init Fiber app. The body limit leaves headroom above the 5MB image cap
	// so oversized uploads get a JSON rejection instead of a connection error.
	app := fiber.New(fiber.Config{
		AppName:   "Tourism AI Content Generator API",
		BodyLimit: 10 * 1024 * 1024,
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes
	app.Get("/api/health", healthHandler.GetHealth)
	app.Post("/api/generate-content", contentHandler.GenerateContent)

	// Static frontend + uploaded files
	app.Static("/uploads", store.BasePath())
	app.Static("/", cfg.StaticDir)

	log.Printf("✅ content-api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
