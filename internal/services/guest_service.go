package services

import (
	apperrors "bella/internal/errors"
	"bella/internal/models"
	"bella/internal/store"
	"bella/internal/uuid"
)

// guestService handles the guest list collection.
type guestService struct {
	store *store.Store
}

// NewGuestService creates a new GuestServicer.
func NewGuestService(st *store.Store) GuestServicer {
	return &guestService{store: st}
}

func (s *guestService) load(userID uint) []models.Guest {
	return store.Load(s.store, userID, models.CollectionGuests, models.SeedGuests())
}

// loadForWrite surfaces read failures: a mutation must not proceed from
// seed data and save it over the stored collection.
func (s *guestService) loadForWrite(userID uint) ([]models.Guest, error) {
	guests, err := store.Get(s.store, userID, models.CollectionGuests, models.SeedGuests())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return guests, nil
}

// ListGuests returns the user's guest list.
func (s *guestService) ListGuests(userID uint) []models.Guest {
	return s.load(userID)
}

// AddGuest appends a guest. An unset RSVP status defaults to pending and
// an unset meal preference defaults to standard.
func (s *guestService) AddGuest(userID uint, guest models.Guest) (*models.Guest, error) {
	if guest.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "guest name is required")
	}
	if guest.RSVPStatus == "" {
		guest.RSVPStatus = models.RSVPPending
	}
	if guest.MealPreference == "" {
		guest.MealPreference = models.MealStandard
	}
	if !guest.RSVPStatus.IsValid() || !guest.MealPreference.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid RSVP status or meal preference")
	}
	guest.ID = uuid.New()

	guests, err := s.loadForWrite(userID)
	if err != nil {
		return nil, err
	}
	guests = append(guests, guest)
	if err := store.Save(s.store, userID, models.CollectionGuests, guests); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &guest, nil
}

// UpdateGuest replaces the addressed guest's fields, keeping its id. An
// unset RSVP status or meal preference keeps the guest's current value,
// so a partial edit does not reset them.
func (s *guestService) UpdateGuest(userID uint, guestID string, updated models.Guest) (*models.Guest, error) {
	if updated.RSVPStatus != "" && !updated.RSVPStatus.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid RSVP status")
	}
	if updated.MealPreference != "" && !updated.MealPreference.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid meal preference")
	}

	guests, err := s.loadForWrite(userID)
	if err != nil {
		return nil, err
	}
	for i := range guests {
		if guests[i].ID != guestID {
			continue
		}
		updated.ID = guestID
		if updated.RSVPStatus == "" {
			updated.RSVPStatus = guests[i].RSVPStatus
		}
		if updated.MealPreference == "" {
			updated.MealPreference = guests[i].MealPreference
		}
		guests[i] = updated
		if err := store.Save(s.store, userID, models.CollectionGuests, guests); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &updated, nil
	}
	return nil, apperrors.ErrGuestNotFound
}

// SetRSVP is the quick action: it changes only the addressed guest's
// RSVP status.
func (s *guestService) SetRSVP(userID uint, guestID string, status models.RSVPStatus) (*models.Guest, error) {
	if !status.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid RSVP status")
	}

	guests, err := s.loadForWrite(userID)
	if err != nil {
		return nil, err
	}
	for i := range guests {
		if guests[i].ID != guestID {
			continue
		}
		guests[i].RSVPStatus = status
		if err := store.Save(s.store, userID, models.CollectionGuests, guests); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		changed := guests[i]
		return &changed, nil
	}
	return nil, apperrors.ErrGuestNotFound
}

// DeleteGuest removes a guest by id.
func (s *guestService) DeleteGuest(userID uint, guestID string) error {
	guests, err := s.loadForWrite(userID)
	if err != nil {
		return err
	}
	filtered := guests[:0:0]
	for _, guest := range guests {
		if guest.ID != guestID {
			filtered = append(filtered, guest)
		}
	}
	if len(filtered) == len(guests) {
		return apperrors.ErrGuestNotFound
	}
	if err := store.Save(s.store, userID, models.CollectionGuests, filtered); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
