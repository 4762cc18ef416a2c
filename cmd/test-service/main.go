package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"

	"story-pipeline/internal/client"
	"story-pipeline/internal/config"
	"story-pipeline/internal/controller"
	httpserver "story-pipeline/internal/http"
	"story-pipeline/internal/routes"
	"story-pipeline/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.StoriesServiceURL == "" {
		log.Fatalf("STORIES_SERVICE_URL is required")
	}

	fetcher := client.NewHTTPStoryClient(cfg.StoriesServiceURL, cfg.FetchTimeout)
	testService := service.NewTestService(fetcher)
	testController := controller.NewTestController(testService)

	server := httpserver.NewServer(cfg, func(app *fiber.App) {
		routes.RegisterTestRoutes(app, testController)
	})

	log.Printf("starting test service on %s", cfg.HTTPPort)
	if err := server.Listen(cfg.HTTPPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
