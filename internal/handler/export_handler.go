package handler

import (
	"errors"
	"fmt"

	"github.com/campusfest/campus-events-backend/internal/middleware"
	"github.com/campusfest/campus-events-backend/internal/models"
	"github.com/campusfest/campus-events-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// ExportHandler serves the registrant list, on screen and as CSV. Both
// routes enforce event ownership through EventService.
type ExportHandler struct {
	exportService *service.ExportService
	eventService  *service.EventService
}

func NewExportHandler(exportService *service.ExportService, eventService *service.EventService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		eventService:  eventService,
	}
}

func (h *ExportHandler) ViewParticipants(c *fiber.Ctx) error {
	event, ok := h.ownedEvent(c)
	if !ok {
		return nil
	}

	rows, err := h.exportService.ParticipantRows(event.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"event":        event,
		"participants": rows,
	}, ""))
}

func (h *ExportHandler) DownloadParticipants(c *fiber.Ctx) error {
	event, ok := h.ownedEvent(c)
	if !ok {
		return nil
	}

	data, err := h.exportService.ParticipantsCSV(event.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=participants_%d.csv", event.ID))
	return c.Send(data)
}

// ownedEvent resolves the :eventID param to an event owned by the
// current organizer. On failure it writes the error response and
// returns false.
func (h *ExportHandler) ownedEvent(c *fiber.Ctx) (*models.Event, bool) {
	eventID, err := eventIDParam(c)
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
		return nil, false
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
		return nil, false
	}

	event, err := h.eventService.GetOwnedEvent(eventID, userID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
		} else {
			c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Access Denied"))
		}
		return nil, false
	}
	return event, true
}
