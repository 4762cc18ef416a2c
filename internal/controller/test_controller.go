package controller

import (
	"story-pipeline/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type TestController interface {
	GetTests(c *fiber.Ctx) error
}

type testController struct {
	tests service.TestService
}

// NewTestController builds a TestController.
func NewTestController(svc service.TestService) TestController {
	return &testController{tests: svc}
}

// GetTests generates automation tests for stories, optionally one story.
func (h *testController) GetTests(c *fiber.Ctx) error {
	storyID := utils.Trim(c.Query("story_id"), ' ')

	tests, err := h.tests.GenerateTests(c.Context(), storyID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate tests")
	}
	if len(tests) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no tests found for the given criteria")
	}

	return c.JSON(tests)
}
