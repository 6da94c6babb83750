package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bella/internal/errors"
	"bella/internal/models"
	"bella/internal/services"
)

// GuestHandler handles guest list requests.
type GuestHandler struct {
	guestService services.GuestServicer
	auditService services.AuditServicer
}

// NewGuestHandler creates a new GuestHandler.
func NewGuestHandler(guestService services.GuestServicer, auditService services.AuditServicer) *GuestHandler {
	return &GuestHandler{guestService: guestService, auditService: auditService}
}

// GuestRequest represents a guest payload for create and update
type GuestRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Email          string `json:"email" binding:"omitempty,email,max=255"`
	RSVPStatus     string `json:"rsvpStatus" binding:"omitempty,rsvp_status"`
	MealPreference string `json:"mealPreference" binding:"omitempty,meal_preference"`
	PlusOne        bool   `json:"plusOne"`
	Photo          string `json:"photo"`
	MobileOrCity   string `json:"mobileOrCity" binding:"max=100"`
}

// SetRSVPRequest updates only the RSVP status
type SetRSVPRequest struct {
	RSVPStatus string `json:"rsvpStatus" binding:"required,rsvp_status"`
}

func (r GuestRequest) toModel() models.Guest {
	return models.Guest{
		Name:           r.Name,
		Email:          r.Email,
		RSVPStatus:     models.RSVPStatus(r.RSVPStatus),
		MealPreference: models.MealPreference(r.MealPreference),
		PlusOne:        r.PlusOne,
		Photo:          r.Photo,
		MobileOrCity:   r.MobileOrCity,
	}
}

// ListGuests returns the guest list
// @Summary     List guests
// @Tags        guests
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Guest "Guests"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.guestService.ListGuests(userID))
}

// AddGuest creates a guest
// @Summary     Add guest
// @Tags        guests
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body GuestRequest true "Guest"
// @Success     201 {object} models.Guest "Created guest"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /guests [post]
func (h *GuestHandler) AddGuest(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	guest, err := h.guestService.AddGuest(userID, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "guest", guest.ID, c.ClientIP(), map[string]any{"name": guest.Name})

	c.JSON(http.StatusCreated, guest)
}

// UpdateGuest replaces a guest's details
// @Summary     Update guest
// @Tags        guests
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Guest ID"
// @Param       request body GuestRequest true "Guest"
// @Success     200 {object} models.Guest "Updated guest"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Guest not found"
// @Router      /guests/{id} [put]
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	guest, err := h.guestService.UpdateGuest(userID, c.Param("id"), req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "guest", guest.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, guest)
}

// SetRSVP updates only the RSVP status of a guest
// @Summary     Set guest RSVP
// @Tags        guests
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Guest ID"
// @Param       request body SetRSVPRequest true "RSVP status"
// @Success     200 {object} models.Guest "Updated guest"
// @Failure     400 {object} ErrorResponse "Invalid status"
// @Failure     404 {object} ErrorResponse "Guest not found"
// @Router      /guests/{id}/rsvp [patch]
func (h *GuestHandler) SetRSVP(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	guest, err := h.guestService.SetRSVP(userID, c.Param("id"), models.RSVPStatus(req.RSVPStatus))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "rsvp", "guest", guest.ID, c.ClientIP(), map[string]any{"status": guest.RSVPStatus})

	c.JSON(http.StatusOK, guest)
}

// DeleteGuest removes a guest
// @Summary     Delete guest
// @Tags        guests
// @Security    BearerAuth
// @Param       id path string true "Guest ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Guest not found"
// @Router      /guests/{id} [delete]
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	guestID := c.Param("id")
	if err := h.guestService.DeleteGuest(userID, guestID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "guest", guestID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
