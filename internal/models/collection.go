package models

// CollectionName identifies one of the per-user planner collections.
type CollectionName string

const (
	CollectionWeddingDate CollectionName = "wedding_date"
	CollectionBudget      CollectionName = "budget"
	CollectionGuests      CollectionName = "guests"
	CollectionTasks       CollectionName = "tasks"
	CollectionEvents      CollectionName = "events"
)

// CollectionRecord holds one JSON-serialized collection for one user.
// There is exactly one row per (user, collection) pair; every mutation
// rewrites the whole payload (read-modify-write, last-write-wins).
type CollectionRecord struct {
	Base
	UserID  uint           `gorm:"not null;uniqueIndex:idx_user_collection" json:"user_id"`
	Name    CollectionName `gorm:"not null;uniqueIndex:idx_user_collection" json:"name"`
	Payload []byte         `gorm:"not null" json:"payload"`
}
