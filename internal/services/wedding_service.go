package services

import (
	"math"
	"time"

	apperrors "bella/internal/errors"
	"bella/internal/models"
	"bella/internal/store"
)

// weddingService manages the wedding date and derived dashboard stats.
type weddingService struct {
	store *store.Store
}

// NewWeddingService creates a new WeddingServicer.
func NewWeddingService(st *store.Store) WeddingServicer {
	return &weddingService{store: st}
}

// GetDate returns the wedding date (YYYY-MM-DD).
func (s *weddingService) GetDate(userID uint) string {
	return store.Load(s.store, userID, models.CollectionWeddingDate, models.DefaultWeddingDate)
}

// SetDate replaces the wedding date.
func (s *weddingService) SetDate(userID uint, date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "wedding date must be YYYY-MM-DD")
	}
	if err := store.Save(s.store, userID, models.CollectionWeddingDate, date); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Stats recomputes the dashboard figures from the current collections.
// Nothing is cached or stored; the expected data scale is tens to low
// hundreds of rows per collection.
func (s *weddingService) Stats(userID uint, now time.Time) models.DashboardStats {
	stats := models.DashboardStats{
		DaysLeft: daysUntil(s.GetDate(userID), now),
	}

	for _, item := range store.Load(s.store, userID, models.CollectionBudget, models.SeedBudget()) {
		stats.TotalBudget += item.Estimated
		stats.SpentBudget += item.Actual
	}
	stats.Variance = stats.TotalBudget - stats.SpentBudget

	guests := store.Load(s.store, userID, models.CollectionGuests, models.SeedGuests())
	stats.TotalGuests = len(guests)
	for _, guest := range guests {
		if guest.RSVPStatus == models.RSVPAccepted {
			stats.ConfirmedGuests++
		}
	}

	for _, task := range store.Load(s.store, userID, models.CollectionTasks, models.SeedTasks()) {
		if !task.Completed {
			stats.PendingTasks++
		}
	}

	return stats
}

// daysUntil counts the whole days from now until the date, rounding any
// partial day up and never going below zero: a wedding in the past shows
// zero days left, not a negative number.
func daysUntil(date string, now time.Time) int {
	wedding, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	days := int(math.Ceil(wedding.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
