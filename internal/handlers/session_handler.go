package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bella/internal/errors"
	"bella/internal/models"
	"bella/internal/services"
)

// SessionHandler exposes the per-session view state.
type SessionHandler struct {
	sessionService services.SessionServicer
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService services.SessionServicer) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// SetViewRequest selects the active screen
type SetViewRequest struct {
	View string `json:"view" binding:"required,planner_view"`
}

// GetView returns the active screen
// @Summary     Get current view
// @Tags        session
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Active view"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /session/view [get]
func (h *SessionHandler) GetView(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": h.sessionService.CurrentView(userID)})
}

// SetView switches the active screen
// @Summary     Set current view
// @Tags        session
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetViewRequest true "View"
// @Success     200 {object} map[string]string "Active view"
// @Failure     400 {object} ErrorResponse "Unknown view"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /session/view [put]
func (h *SessionHandler) SetView(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	view := models.View(req.View)
	if err := h.sessionService.SetView(userID, view); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": view})
}
