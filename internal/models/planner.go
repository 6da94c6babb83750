package models

// RSVPStatus represents a guest's response state.
type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
)

// MealPreference represents a guest's meal choice.
type MealPreference string

const (
	MealStandard   MealPreference = "standard"
	MealVegetarian MealPreference = "vegetarian"
	MealVegan      MealPreference = "vegan"
)

// ChatRole tags a chat transcript turn.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// BudgetItem is one line of the wedding budget. Amounts are whole
// currency units.
type BudgetItem struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
	Paid      float64 `json:"paid"`
}

// Guest is one invitee on the guest list. Photo, when present, holds a
// base64-encoded image.
type Guest struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	RSVPStatus     RSVPStatus     `json:"rsvpStatus"`
	MealPreference MealPreference `json:"mealPreference"`
	PlusOne        bool           `json:"plusOne"`
	Photo          string         `json:"photo,omitempty"`
	MobileOrCity   string         `json:"mobileOrCity,omitempty"`
}

// Task is one checklist entry. DueDate is a YYYY-MM-DD calendar date.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	DueDate   string `json:"dueDate"`
	Completed bool   `json:"completed"`
	Category  string `json:"category"`
}

// EventItem is one timeline entry. Time is HH:MM; Date, when set, is
// YYYY-MM-DD. Both formats sort correctly as plain strings.
type EventItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Time    string `json:"time"`
	Date    string `json:"date,omitempty"`
	Details string `json:"details,omitempty"`
}

// ChatMessage is one turn of the assistant conversation. Chat history is
// ephemeral and never persisted; the in-progress model turn is mutated
// incrementally as stream chunks arrive, then frozen.
type ChatMessage struct {
	ID        string   `json:"id"`
	Role      ChatRole `json:"role"`
	Text      string   `json:"text"`
	Timestamp int64    `json:"timestamp"`
}

// DashboardStats holds the derived dashboard figures. They are recomputed
// from the current collections on every request and never stored.
type DashboardStats struct {
	DaysLeft        int     `json:"daysLeft"`
	TotalBudget     float64 `json:"totalBudget"`
	SpentBudget     float64 `json:"spentBudget"`
	Variance        float64 `json:"variance"`
	TotalGuests     int     `json:"totalGuests"`
	ConfirmedGuests int     `json:"confirmedGuests"`
	PendingTasks    int     `json:"pendingTasks"`
}

// BudgetTotals aggregates the budget collection.
type BudgetTotals struct {
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
	Paid      float64 `json:"paid"`
	Pending   float64 `json:"pending"`  // actual - paid
	Variance  float64 `json:"variance"` // estimated - actual
}

// IsValid reports whether the status is one of the known RSVP states.
func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPPending, RSVPAccepted, RSVPDeclined:
		return true
	}
	return false
}

// IsValid reports whether the preference is one of the known meal choices.
func (m MealPreference) IsValid() bool {
	switch m {
	case MealStandard, MealVegetarian, MealVegan:
		return true
	}
	return false
}

// IsValid reports whether the role is one of the known transcript roles.
func (r ChatRole) IsValid() bool {
	switch r {
	case ChatRoleUser, ChatRoleModel:
		return true
	}
	return false
}
