package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"story-pipeline/internal/config"
)

// Server wraps the Fiber application setup shared by the three services.
type Server struct {
	app *fiber.App
}

// NewServer configures middleware and lets the caller register its routes.
func NewServer(appCfg *config.Config, register func(app *fiber.App)) *Server {
	fiberCfg := fiber.Config{
		DisableStartupMessage: true,
		Prefork:               appCfg.FiberPrefork,
	}
	app := fiber.New(fiberCfg)
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	register(app)

	return &Server{app: app}
}

// Listen runs the server on provided addr.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}
