package routes

import (
	"story-pipeline/internal/controller"

	"github.com/gofiber/fiber/v2"
)

// RegisterEventRoutes attaches the ingestion endpoints.
func RegisterEventRoutes(app *fiber.App, events controller.EventController) {
	v1 := app.Group("/v1")
	v1.Post("/events", events.ProcessEvents)
}

// RegisterStoryRoutes attaches the story and pattern endpoints.
func RegisterStoryRoutes(app *fiber.App, stories controller.StoryController) {
	v1 := app.Group("/v1")
	v1.Get("/stories", stories.GetStories)
	v1.Post("/stories", stories.CreateStories)
	v1.Get("/stories/patterns", stories.GetPatterns)
}

// RegisterTestRoutes attaches the test generation endpoints.
func RegisterTestRoutes(app *fiber.App, tests controller.TestController) {
	v1 := app.Group("/v1")
	v1.Get("/tests", tests.GetTests)
}
