package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bella/internal/errors"
	"bella/internal/services"
)

// AssistantHandler handles chat and inspiration requests.
type AssistantHandler struct {
	assistantService services.AssistantServicer
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantService services.AssistantServicer) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// ChatRequest represents one user chat turn
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
}

// InspirationRequest asks for a generated moodboard image
type InspirationRequest struct {
	Prompt string `json:"prompt" binding:"required,max=1000"`
}

// Chat streams the assistant's reply as server-sent events
// @Summary     Chat with the assistant
// @Description Streams the reply as SSE; each event carries a text delta, a final done event carries the full message
// @Tags        assistant
// @Accept      json
// @Produce     text/event-stream
// @Security    BearerAuth
// @Param       request body ChatRequest true "User message"
// @Success     200 {string} string "SSE stream"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	reply, err := h.assistantService.Chat(c.Request.Context(), userID, req.Message, func(messageID, delta string) error {
		payload, err := json.Marshal(gin.H{"messageId": messageID, "delta": delta})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if err != nil || reply == nil {
		return
	}

	payload, err := json.Marshal(reply)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "event: done\ndata: %s\n\n", payload)
	c.Writer.Flush()
}

// History returns the chat transcript
// @Summary     Get chat history
// @Tags        assistant
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.ChatMessage "Messages, oldest first"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /assistant/history [get]
func (h *AssistantHandler) History(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.assistantService.History(userID))
}

// ClearHistory drops the chat transcript
// @Summary     Clear chat history
// @Tags        assistant
// @Security    BearerAuth
// @Success     204 "Cleared"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /assistant/history [delete]
func (h *AssistantHandler) ClearHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.assistantService.ClearHistory(userID)
	c.Status(http.StatusNoContent)
}

// Inspiration generates a moodboard image
// @Summary     Generate inspiration image
// @Description Returns the image as base64 PNG data, or an empty string if generation failed
// @Tags        assistant
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body InspirationRequest true "Image prompt"
// @Success     200 {object} map[string]string "Base64 image data"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /inspiration [post]
func (h *AssistantHandler) Inspiration(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req InspirationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": h.assistantService.Inspiration(c.Request.Context(), req.Prompt)})
}
