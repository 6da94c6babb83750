package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "bella/internal/errors"
	"bella/internal/services"
)

// WeddingHandler serves the wedding date and the dashboard statistics.
type WeddingHandler struct {
	weddingService services.WeddingServicer
}

// NewWeddingHandler creates a new WeddingHandler.
func NewWeddingHandler(weddingService services.WeddingServicer) *WeddingHandler {
	return &WeddingHandler{weddingService: weddingService}
}

// SetDateRequest represents the wedding date update payload
type SetDateRequest struct {
	Date string `json:"date" binding:"required,iso_date"`
}

// GetDate returns the wedding date
// @Summary     Get wedding date
// @Tags        wedding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Wedding date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /wedding/date [get]
func (h *WeddingHandler) GetDate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": h.weddingService.GetDate(userID)})
}

// SetDate updates the wedding date
// @Summary     Set wedding date
// @Tags        wedding
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetDateRequest true "Wedding date"
// @Success     200 {object} map[string]string "Updated wedding date"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /wedding/date [put]
func (h *WeddingHandler) SetDate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.weddingService.SetDate(userID, req.Date); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": req.Date})
}

// GetStats returns the dashboard statistics
// @Summary     Get dashboard statistics
// @Description Days left, budget figures, guest counts and pending tasks
// @Tags        wedding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.DashboardStats "Dashboard statistics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/stats [get]
func (h *WeddingHandler) GetStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.weddingService.Stats(userID, time.Now()))
}
