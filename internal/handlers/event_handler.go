package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bella/internal/errors"
	"bella/internal/services"
)

// EventHandler handles wedding-day timeline requests.
type EventHandler struct {
	eventService services.EventServicer
	auditService services.AuditServicer
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService services.EventServicer, auditService services.AuditServicer) *EventHandler {
	return &EventHandler{eventService: eventService, auditService: auditService}
}

// AddEventRequest represents a new timeline event
type AddEventRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Time    string `json:"time" binding:"required,clock_time"`
	Date    string `json:"date" binding:"omitempty,iso_date"`
	Details string `json:"details" binding:"max=500"`
}

// ListEvents returns the timeline sorted chronologically
// @Summary     List timeline events
// @Tags        timeline
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.EventItem "Events sorted by date then time"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.eventService.ListEvents(userID))
}

// AddEvent creates a timeline event
// @Summary     Add timeline event
// @Tags        timeline
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddEventRequest true "Event"
// @Success     201 {object} models.EventItem "Created event"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /events [post]
func (h *EventHandler) AddEvent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	event, err := h.eventService.AddEvent(userID, req.Name, req.Time, req.Date, req.Details)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "event", event.ID, c.ClientIP(), map[string]any{"name": event.Name})

	c.JSON(http.StatusCreated, event)
}

// DeleteEvent removes a timeline event
// @Summary     Delete timeline event
// @Tags        timeline
// @Security    BearerAuth
// @Param       id path string true "Event ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Router      /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	eventID := c.Param("id")
	if err := h.eventService.DeleteEvent(userID, eventID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "event", eventID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
