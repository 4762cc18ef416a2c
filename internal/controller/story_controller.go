package controller

import (
	"story-pipeline/internal/model"
	"story-pipeline/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type StoryController interface {
	GetStories(c *fiber.Ctx) error
	CreateStories(c *fiber.Ctx) error
	GetPatterns(c *fiber.Ctx) error
}

type storyController struct {
	stories service.StoryService
}

// NewStoryController builds a StoryController.
func NewStoryController(svc service.StoryService) StoryController {
	return &storyController{stories: svc}
}

// GetStories returns stored stories, optionally filtered by session_id or
// story_id. session_id takes precedence when both are given.
func (h *storyController) GetStories(c *fiber.Ctx) error {
	filter := buildStoryFilter(c)

	stories, err := h.stories.GetStories(c.Context(), filter)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch stories")
	}
	if len(stories) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no stories found")
	}

	return c.JSON(fiber.Map{"stories": stories})
}

// CreateStories groups an event batch into stories and upserts them.
func (h *storyController) CreateStories(c *fiber.Ctx) error {
	var events []model.Event
	if err := c.BodyParser(&events); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json payload")
	}

	if _, err := h.stories.SaveStories(c.Context(), events); err != nil {
		if _, ok := err.(*service.ValidationError); ok {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to process stories")
	}

	return c.JSON(fiber.Map{"message": "stories created or updated"})
}

// GetPatterns reports detected behavioral patterns over stored stories.
func (h *storyController) GetPatterns(c *fiber.Ctx) error {
	sessionID := utils.Trim(c.Query("session_id"), ' ')

	report, err := h.stories.GetPatterns(c.Context(), sessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to detect patterns")
	}

	return c.JSON(report)
}

func buildStoryFilter(c *fiber.Ctx) model.StoryFilter {
	filter := model.StoryFilter{
		SessionID: utils.Trim(c.Query("session_id"), ' '),
	}
	if filter.SessionID == "" {
		filter.StoryID = utils.Trim(c.Query("story_id"), ' ')
	}
	return filter
}
