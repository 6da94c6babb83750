package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "bella/internal/errors"
	"bella/internal/services"
)

// contactEmail receives planner inquiries.
const contactEmail = "myweddingclicksindia@gmail.com"

// ContactHandler composes inquiry mailto links.
type ContactHandler struct {
	auditService services.AuditServicer
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(auditService services.AuditServicer) *ContactHandler {
	return &ContactHandler{auditService: auditService}
}

// ContactRequest represents an inquiry form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Message string `json:"message" binding:"required,max=2000"`
}

// Submit composes the inquiry as a mailto link
// @Summary     Submit a contact inquiry
// @Description Builds a mailto link addressed to the planning team with the inquiry prefilled
// @Tags        contact
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ContactRequest true "Inquiry"
// @Success     200 {object} map[string]string "Mailto link"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	subject := "Wedding Inquiry from " + req.Name
	body := "Name: " + req.Name + "\nPhone: " + req.Phone + "\n\nMessage:\n" + req.Message
	mailto := "mailto:" + contactEmail +
		"?subject=" + escapeMailto(subject) +
		"&body=" + escapeMailto(body)

	h.auditService.Log(userID, "contact", "inquiry", "", c.ClientIP(), map[string]any{"name": req.Name})

	c.JSON(http.StatusOK, gin.H{"mailto": mailto})
}

// escapeMailto percent-encodes a mailto query component. QueryEscape's
// plus-for-space form is not understood by mail clients.
func escapeMailto(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
