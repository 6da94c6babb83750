// Package services contains the business logic of the planner. Handlers
// depend on the servicer interfaces below so they can be mocked in tests.
package services

import (
	"context"
	"time"

	"bella/internal/genai"
	"bella/internal/models"
)

// UserServicer handles user registration and authentication.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

// WeddingServicer manages the wedding date and the derived dashboard stats.
type WeddingServicer interface {
	GetDate(userID uint) string
	SetDate(userID uint, date string) error
	Stats(userID uint, now time.Time) models.DashboardStats
}

// BudgetServicer manages the budget collection.
type BudgetServicer interface {
	ListItems(userID uint) []models.BudgetItem
	AddItem(userID uint, category string, estimated, actual, paid float64) (*models.BudgetItem, error)
	UpdateItem(userID uint, itemID string, category *string, estimated, actual, paid *float64) (*models.BudgetItem, error)
	RemoveItem(userID uint, itemID string) error
	Suggest(ctx context.Context, userID uint, totalBudget float64, guestCount int, location string) ([]models.BudgetItem, error)
	Totals(userID uint) models.BudgetTotals
}

// GuestServicer manages the guest list.
type GuestServicer interface {
	ListGuests(userID uint) []models.Guest
	AddGuest(userID uint, guest models.Guest) (*models.Guest, error)
	UpdateGuest(userID uint, guestID string, updated models.Guest) (*models.Guest, error)
	SetRSVP(userID uint, guestID string, status models.RSVPStatus) (*models.Guest, error)
	DeleteGuest(userID uint, guestID string) error
}

// TaskServicer manages the checklist.
type TaskServicer interface {
	ListTasks(userID uint) []models.Task
	AddTask(userID uint, title, dueDate, category string) (*models.Task, error)
	ToggleTask(userID uint, taskID string) (*models.Task, error)
	DeleteTask(userID uint, taskID string) error
	Progress(userID uint) int
}

// EventServicer manages the wedding-day timeline.
type EventServicer interface {
	ListEvents(userID uint) []models.EventItem
	AddEvent(userID uint, name, clockTime, date, details string) (*models.EventItem, error)
	DeleteEvent(userID uint, eventID string) error
}

// AssistantServicer runs the AI chat session and inspiration images.
type AssistantServicer interface {
	Chat(ctx context.Context, userID uint, message string, onDelta func(messageID, delta string) error) (*models.ChatMessage, error)
	History(userID uint) []models.ChatMessage
	ClearHistory(userID uint)
	Inspiration(ctx context.Context, prompt string) string
}

// AuditServicer records audit log entries.
type AuditServicer interface {
	Log(userID uint, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}

// AIGateway is the surface of the generative model the services call.
// *genai.Client satisfies it; tests substitute fakes.
type AIGateway interface {
	ChatStream(ctx context.Context, history []genai.Turn, message string, onDelta func(text string) error) error
	SuggestBudget(ctx context.Context, totalBudget float64, guestCount int, location string) ([]genai.BudgetSuggestion, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
