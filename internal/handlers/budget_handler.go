package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bella/internal/errors"
	"bella/internal/services"
)

// BudgetHandler handles budget item requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// AddBudgetItemRequest represents a new budget line
type AddBudgetItemRequest struct {
	Category  string  `json:"category" binding:"required,max=100"`
	Estimated float64 `json:"estimated" binding:"min=0"`
	Actual    float64 `json:"actual" binding:"min=0"`
	Paid      float64 `json:"paid" binding:"min=0"`
}

// UpdateBudgetItemRequest carries partial updates to a budget line
type UpdateBudgetItemRequest struct {
	Category  *string  `json:"category" binding:"omitempty,max=100"`
	Estimated *float64 `json:"estimated" binding:"omitempty,min=0"`
	Actual    *float64 `json:"actual" binding:"omitempty,min=0"`
	Paid      *float64 `json:"paid" binding:"omitempty,min=0"`
}

// SuggestBudgetRequest asks the assistant for a budget breakdown
type SuggestBudgetRequest struct {
	TotalBudget float64 `json:"totalBudget" binding:"required,gt=0"`
	GuestCount  int     `json:"guestCount" binding:"required,gt=0"`
	Location    string  `json:"location" binding:"required,max=200"`
}

// ListItems returns all budget items with totals
// @Summary     List budget items
// @Tags        budget
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]any "Budget items and totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budget [get]
func (h *BudgetHandler) ListItems(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  h.budgetService.ListItems(userID),
		"totals": h.budgetService.Totals(userID),
	})
}

// AddItem creates a budget item
// @Summary     Add budget item
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddBudgetItemRequest true "Budget item"
// @Success     201 {object} models.BudgetItem "Created item"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budget [post]
func (h *BudgetHandler) AddItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.budgetService.AddItem(userID, req.Category, req.Estimated, req.Actual, req.Paid)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "budget_item", item.ID, c.ClientIP(), map[string]any{"category": item.Category})

	c.JSON(http.StatusCreated, item)
}

// UpdateItem updates a budget item
// @Summary     Update budget item
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget item ID"
// @Param       request body UpdateBudgetItemRequest true "Fields to update"
// @Success     200 {object} models.BudgetItem "Updated item"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /budget/{id} [put]
func (h *BudgetHandler) UpdateItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.budgetService.UpdateItem(userID, c.Param("id"), req.Category, req.Estimated, req.Actual, req.Paid)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "budget_item", item.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, item)
}

// RemoveItem deletes a budget item
// @Summary     Delete budget item
// @Tags        budget
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget item ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /budget/{id} [delete]
func (h *BudgetHandler) RemoveItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemID := c.Param("id")
	if err := h.budgetService.RemoveItem(userID, itemID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "budget_item", itemID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// Suggest replaces the budget with an AI generated breakdown
// @Summary     Suggest budget breakdown
// @Description Generate a budget allocation from total budget, guest count and location
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SuggestBudgetRequest true "Budget parameters"
// @Success     200 {object} map[string]any "Suggested items"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Assistant unavailable"
// @Router      /budget/suggest [post]
func (h *BudgetHandler) Suggest(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SuggestBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	items, err := h.budgetService.Suggest(c.Request.Context(), userID, req.TotalBudget, req.GuestCount, req.Location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "suggest", "budget", "", c.ClientIP(), map[string]any{"total": req.TotalBudget})

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"totals": h.budgetService.Totals(userID),
	})
}
