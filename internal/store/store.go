// Package store persists the per-user planner collections as whole JSON
// documents, one row per (user, collection) pair. Every mutation is a
// synchronous read-modify-write of the full payload; the last write wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bella/internal/logger"
	"bella/internal/models"
)

// Store reads and writes JSON collection payloads.
type Store struct {
	db *gorm.DB
}

// New creates a Store backed by the given database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load returns the user's collection, or seed when the collection has
// never been written or its stored payload cannot be decoded. A corrupt
// payload is deliberately not surfaced: the caller gets the seed data
// and the incident is only logged. A transient read error also degrades
// to the seed, so reads never fail.
func Load[T any](s *Store, userID uint, name models.CollectionName, seed T) T {
	value, err := Get(s, userID, name, seed)
	if err != nil {
		logger.Get().Errorw("failed to read collection, serving seed data",
			"user_id", userID, "collection", name, "error", err)
		return seed
	}
	return value
}

// Get is the read half of a read-modify-write. Unlike Load it surfaces
// transient read errors so a failed read cannot end with the seed being
// written over the user's real collection. The seed fallback still
// applies to a missing row or a corrupt payload.
func Get[T any](s *Store, userID uint, name models.CollectionName, seed T) (T, error) {
	var record models.CollectionRecord
	err := s.db.Where("user_id = ? AND name = ?", userID, name).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return seed, nil
		}
		return seed, fmt.Errorf("failed to read collection %s: %w", name, err)
	}

	var value T
	if err := json.Unmarshal(record.Payload, &value); err != nil {
		logger.Get().Warnw("corrupt collection payload, serving seed data",
			"user_id", userID, "collection", name, "error", err)
		return seed, nil
	}
	return value, nil
}

// Save serializes value and upserts it as the user's collection payload.
func Save[T any](s *Store, userID uint, name models.CollectionName, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}

	record := models.CollectionRecord{
		UserID:  userID,
		Name:    name,
		Payload: payload,
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	return nil
}
