package services

import (
	"sync"

	apperrors "bella/internal/errors"
	"bella/internal/models"
)

// SessionServicer tracks per-user ephemeral UI state. Nothing here is
// ever persisted; a restart forgets it.
type SessionServicer interface {
	CurrentView(userID uint) models.View
	SetView(userID uint, view models.View) error
}

// sessionService keeps the current view per user in memory.
type sessionService struct {
	mu    sync.Mutex
	views map[uint]models.View
}

// NewSessionService creates a new SessionServicer.
func NewSessionService() SessionServicer {
	return &sessionService{views: make(map[uint]models.View)}
}

// CurrentView returns the user's active screen, defaulting to the dashboard.
func (s *sessionService) CurrentView(userID uint) models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if view, ok := s.views[userID]; ok {
		return view
	}
	return models.ViewDashboard
}

// SetView switches the active screen. Navigation is unconditional: there
// is no unsaved state to guard, every mutation persists immediately.
func (s *sessionService) SetView(userID uint, view models.View) error {
	if !view.IsValid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown view")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[userID] = view
	return nil
}
