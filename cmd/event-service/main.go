package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"

	"story-pipeline/internal/config"
	"story-pipeline/internal/controller"
	"story-pipeline/internal/db"
	httpserver "story-pipeline/internal/http"
	"story-pipeline/internal/notify"
	"story-pipeline/internal/repository"
	"story-pipeline/internal/routes"
	"story-pipeline/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.NewConnection(ctx, cfg)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer conn.Close()

	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := repository.New(conn)
	notifier := notify.NewHTTPNotifier(cfg.StoriesServiceURL, cfg.NotifyTimeout)
	eventService := service.NewEventService(repo, notifier, cfg.NotifyTimeout)
	eventController := controller.NewEventController(eventService)

	server := httpserver.NewServer(cfg, func(app *fiber.App) {
		routes.RegisterEventRoutes(app, eventController)
	})

	log.Printf("starting event service on %s", cfg.HTTPPort)
	if err := server.Listen(cfg.HTTPPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
