package testutil

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"

	"bella/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// SeedCollection writes a collection payload for the user directly,
// bypassing the store.
func SeedCollection(t *testing.T, db *gorm.DB, userID uint, name models.CollectionName, value any) {
	t.Helper()

	payload, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("failed to marshal collection payload: %v", err)
	}

	record := &models.CollectionRecord{
		UserID:  userID,
		Name:    name,
		Payload: payload,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test collection record: %v", err)
	}
}

// CorruptCollection overwrites the user's collection payload with bytes
// that do not parse as JSON.
func CorruptCollection(t *testing.T, db *gorm.DB, userID uint, name models.CollectionName) {
	t.Helper()

	err := db.Model(&models.CollectionRecord{}).
		Where("user_id = ? AND name = ?", userID, name).
		Update("payload", []byte("{not json")).Error
	if err != nil {
		t.Fatalf("failed to corrupt test collection record: %v", err)
	}
}

// TestGuest builds an unsaved guest with unique name and pending RSVP.
func TestGuest() models.Guest {
	n := nextID()
	return models.Guest{
		ID:             fmt.Sprintf("guest-%d", n),
		Name:           fmt.Sprintf("Guest %d", n),
		RSVPStatus:     models.RSVPPending,
		MealPreference: models.MealStandard,
	}
}
