package services

import (
	apperrors "bella/internal/errors"
	"bella/internal/models"
	"bella/internal/store"
	"bella/internal/uuid"
)

// eventService handles the wedding-day timeline collection.
type eventService struct {
	store *store.Store
}

// NewEventService creates a new EventServicer.
func NewEventService(st *store.Store) EventServicer {
	return &eventService{store: st}
}

func (s *eventService) load(userID uint) []models.EventItem {
	return store.Load(s.store, userID, models.CollectionEvents, models.SeedEvents())
}

// loadForWrite surfaces read failures: a mutation must not proceed from
// seed data and save it over the stored collection.
func (s *eventService) loadForWrite(userID uint) ([]models.EventItem, error) {
	events, err := store.Get(s.store, userID, models.CollectionEvents, models.SeedEvents())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return events, nil
}

// ListEvents returns the timeline ordered by (date, time) with undated
// events last.
func (s *eventService) ListEvents(userID uint) []models.EventItem {
	events := s.load(userID)
	models.SortEvents(events)
	return events
}

// AddEvent appends a timeline event. Existing events are never edited in
// place; they are deleted and recreated.
func (s *eventService) AddEvent(userID uint, name, clockTime, date, details string) (*models.EventItem, error) {
	if name == "" || clockTime == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "event name and time are required")
	}

	event := models.EventItem{
		ID:      uuid.New(),
		Name:    name,
		Time:    clockTime,
		Date:    date,
		Details: details,
	}

	events, err := s.loadForWrite(userID)
	if err != nil {
		return nil, err
	}
	events = append(events, event)
	if err := store.Save(s.store, userID, models.CollectionEvents, events); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &event, nil
}

// DeleteEvent removes an event by id.
func (s *eventService) DeleteEvent(userID uint, eventID string) error {
	events, err := s.loadForWrite(userID)
	if err != nil {
		return err
	}
	filtered := events[:0:0]
	for _, event := range events {
		if event.ID != eventID {
			filtered = append(filtered, event)
		}
	}
	if len(filtered) == len(events) {
		return apperrors.ErrEventNotFound
	}
	if err := store.Save(s.store, userID, models.CollectionEvents, filtered); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
