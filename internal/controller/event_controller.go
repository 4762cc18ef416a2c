package controller

import (
	"story-pipeline/internal/model"
	"story-pipeline/internal/service"

	"github.com/gofiber/fiber/v2"
)

type EventController interface {
	ProcessEvents(c *fiber.Ctx) error
}

type eventController struct {
	events service.EventService
}

// NewEventController builds an EventController.
func NewEventController(svc service.EventService) EventController {
	return &eventController{events: svc}
}

// ProcessEvents accepts a JSON array of raw events.
func (h *eventController) ProcessEvents(c *fiber.Ctx) error {
	var events []model.Event
	if err := c.BodyParser(&events); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json payload")
	}

	result, err := h.events.ProcessEvents(c.Context(), events)
	if err != nil {
		if _, ok := err.(*service.ValidationError); ok {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to process events")
	}

	return c.JSON(result)
}
