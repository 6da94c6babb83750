package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"bella/internal/genai"
	"bella/internal/logger"
	"bella/internal/models"
	"bella/internal/uuid"
)

// apologyText is what Bella says when the model cannot be reached.
const apologyText = "I'm having a little trouble connecting to the wedding planning cloud right now. Please try again."

// chatSession is the in-memory transcript for one user. Message history
// lives only for the lifetime of the process.
type chatSession struct {
	messages []models.ChatMessage
	cancel   context.CancelFunc
	turn     uint64
}

type assistantService struct {
	gateway AIGateway

	mu       sync.Mutex
	sessions map[uint]*chatSession
}

// NewAssistantService creates a new AssistantServicer backed by the
// given model gateway.
func NewAssistantService(gateway AIGateway) AssistantServicer {
	return &assistantService{
		gateway:  gateway,
		sessions: make(map[uint]*chatSession),
	}
}

func (s *assistantService) session(userID uint) *chatSession {
	session, ok := s.sessions[userID]
	if !ok {
		session = &chatSession{}
		s.sessions[userID] = session
	}
	return session
}

// Chat appends the user's turn, streams the model's reply through onDelta
// and returns the completed reply message. Starting a new turn cancels
// any reply still streaming for the same user. If the gateway fails the
// reply carries a fixed apology instead of surfacing an error.
func (s *assistantService) Chat(ctx context.Context, userID uint, message string, onDelta func(messageID, delta string) error) (*models.ChatMessage, error) {
	streamCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	session := s.session(userID)
	if session.cancel != nil {
		session.cancel()
	}
	session.cancel = cancel
	session.turn++
	turn := session.turn

	history := make([]genai.Turn, 0, len(session.messages))
	for _, m := range session.messages {
		history = append(history, genai.Turn{Role: string(m.Role), Text: m.Text})
	}

	now := time.Now().UnixMilli()
	session.messages = append(session.messages,
		models.ChatMessage{ID: uuid.New(), Role: models.ChatRoleUser, Text: message, Timestamp: now},
		models.ChatMessage{ID: uuid.New(), Role: models.ChatRoleModel, Timestamp: now},
	)
	replyID := session.messages[len(session.messages)-1].ID
	s.mu.Unlock()

	err := s.gateway.ChatStream(streamCtx, history, message, func(text string) error {
		s.appendDelta(userID, replyID, text)
		if onDelta != nil {
			return onDelta(replyID, text)
		}
		return nil
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	cancel()
	// A newer turn may own the slot by now; only clear our own entry.
	if session.turn == turn {
		session.cancel = nil
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Get().Warnw("assistant chat failed", "error", err)
		s.setMessageText(session, replyID, apologyText)
	}

	reply := s.messageByID(session, replyID)
	return reply, nil
}

func (s *assistantService) appendDelta(userID uint, messageID, delta string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		return
	}
	for i := range session.messages {
		if session.messages[i].ID == messageID {
			session.messages[i].Text += delta
			return
		}
	}
}

func (s *assistantService) setMessageText(session *chatSession, messageID, text string) {
	for i := range session.messages {
		if session.messages[i].ID == messageID {
			session.messages[i].Text = text
			return
		}
	}
}

func (s *assistantService) messageByID(session *chatSession, messageID string) *models.ChatMessage {
	for i := range session.messages {
		if session.messages[i].ID == messageID {
			reply := session.messages[i]
			return &reply
		}
	}
	return nil
}

// History returns a copy of the user's transcript, oldest first.
func (s *assistantService) History(userID uint) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		return []models.ChatMessage{}
	}
	out := make([]models.ChatMessage, len(session.messages))
	copy(out, session.messages)
	return out
}

// ClearHistory drops the transcript and cancels any in-flight reply.
func (s *assistantService) ClearHistory(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[userID]; ok && session.cancel != nil {
		session.cancel()
	}
	delete(s.sessions, userID)
}

// Inspiration generates a moodboard image for the prompt and returns it
// as base64 PNG data. Failures degrade to an empty string.
func (s *assistantService) Inspiration(ctx context.Context, prompt string) string {
	image, err := s.gateway.GenerateImage(ctx, prompt)
	if err != nil {
		logger.Get().Warnw("inspiration image failed", "error", err)
		return ""
	}
	return image
}
