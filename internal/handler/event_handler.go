package handler

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/campusfest/campus-events-backend/internal/middleware"
	"github.com/campusfest/campus-events-backend/internal/models"
	"github.com/campusfest/campus-events-backend/internal/service"
	"github.com/campusfest/campus-events-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

// OrganizerDashboard lists events for the organizer view; scope is
// decided by ORGANIZER_DASHBOARD_ALL_EVENTS.
func (h *EventHandler) OrganizerDashboard(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	events, err := h.eventService.GetOrganizerDashboard(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(events, ""))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.CreateEvent(userID, req, formImage(c))
	if err != nil {
		return h.mapEventError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event Created Successfully!"))
}

// EditEventForm returns the event backing the edit form.
func (h *EventHandler) EditEventForm(c *fiber.Ctx) error {
	eventID, err := eventIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	event, err := h.eventService.GetOwnedEvent(eventID, userID)
	if err != nil {
		return h.mapEventError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, ""))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := eventIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.UpdateEvent(eventID, userID, req, formImage(c))
	if err != nil {
		return h.mapEventError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event Updated Successfully!"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := eventIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	if err := h.eventService.DeleteEvent(eventID, userID); err != nil {
		return h.mapEventError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event deleted"))
}

func (h *EventHandler) mapEventError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
	case errors.Is(err, service.ErrNotEventOwner):
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Access Denied"))
	case errors.Is(err, service.ErrInvalidDateRange):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Error: End date cannot be before Start date!"))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
}

// formImage pulls the optional image from the multipart form; absent or
// unreadable files are treated as "no image supplied".
func formImage(c *fiber.Ctx) *multipart.FileHeader {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return fh
}

func eventIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("eventID"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
