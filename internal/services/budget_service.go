package services

import (
	"context"

	apperrors "bella/internal/errors"
	"bella/internal/models"
	"bella/internal/store"
	"bella/internal/uuid"
)

// budgetService handles the budget collection.
type budgetService struct {
	store   *store.Store
	gateway AIGateway
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(st *store.Store, gateway AIGateway) BudgetServicer {
	return &budgetService{store: st, gateway: gateway}
}

func (s *budgetService) load(userID uint) []models.BudgetItem {
	return store.Load(s.store, userID, models.CollectionBudget, models.SeedBudget())
}

// loadForWrite surfaces read failures: a mutation must not proceed from
// seed data and save it over the stored collection.
func (s *budgetService) loadForWrite(userID uint) ([]models.BudgetItem, error) {
	items, err := store.Get(s.store, userID, models.CollectionBudget, models.SeedBudget())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// ListItems returns the user's budget items.
func (s *budgetService) ListItems(userID uint) []models.BudgetItem {
	return s.load(userID)
}

// AddItem appends a budget item. Unset amounts default to zero.
func (s *budgetService) AddItem(userID uint, category string, estimated, actual, paid float64) (*models.BudgetItem, error) {
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	item := models.BudgetItem{
		ID:        uuid.New(),
		Category:  category,
		Estimated: estimated,
		Actual:    actual,
		Paid:      paid,
	}

	items, err := s.loadForWrite(userID)
	if err != nil {
		return nil, err
	}
	items = append(items, item)
	if err := store.Save(s.store, userID, models.CollectionBudget, items); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// UpdateItem mutates an existing item in place. Nil fields are left unchanged.
func (s *budgetService) UpdateItem(userID uint, itemID string, category *string, estimated, actual, paid *float64) (*models.BudgetItem, error) {
	items, err := s.loadForWrite(userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		if category != nil {
			items[i].Category = *category
		}
		if estimated != nil {
			items[i].Estimated = *estimated
		}
		if actual != nil {
			items[i].Actual = *actual
		}
		if paid != nil {
			items[i].Paid = *paid
		}
		if err := store.Save(s.store, userID, models.CollectionBudget, items); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, apperrors.ErrBudgetItemNotFound
}

// RemoveItem deletes an item by id.
func (s *budgetService) RemoveItem(userID uint, itemID string) error {
	items, err := s.loadForWrite(userID)
	if err != nil {
		return err
	}
	filtered := items[:0:0]
	for _, item := range items {
		if item.ID != itemID {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(items) {
		return apperrors.ErrBudgetItemNotFound
	}
	if err := store.Save(s.store, userID, models.CollectionBudget, filtered); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Suggest asks the AI gateway for a budget breakdown and appends the
// suggested rows with fresh ids and zeroed actual/paid amounts. When the
// gateway fails the collection is left untouched.
func (s *budgetService) Suggest(ctx context.Context, userID uint, totalBudget float64, guestCount int, location string) ([]models.BudgetItem, error) {
	suggestions, err := s.gateway.SuggestBudget(ctx, totalBudget, guestCount, location)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAssistantUnavailable, err)
	}

	added := make([]models.BudgetItem, 0, len(suggestions))
	for _, suggestion := range suggestions {
		added = append(added, models.BudgetItem{
			ID:        uuid.New(),
			Category:  suggestion.Category,
			Estimated: suggestion.Estimated,
		})
	}

	items, err := s.loadForWrite(userID)
	if err != nil {
		return nil, err
	}
	items = append(items, added...)
	if err := store.Save(s.store, userID, models.CollectionBudget, items); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return added, nil
}

// Totals aggregates the collection. Pending is what is still owed on
// work already billed; variance is the estimate headroom.
func (s *budgetService) Totals(userID uint) models.BudgetTotals {
	var totals models.BudgetTotals
	for _, item := range s.load(userID) {
		totals.Estimated += item.Estimated
		totals.Actual += item.Actual
		totals.Paid += item.Paid
	}
	totals.Pending = totals.Actual - totals.Paid
	totals.Variance = totals.Estimated - totals.Actual
	return totals
}
