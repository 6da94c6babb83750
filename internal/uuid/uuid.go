// Package uuid generates identifiers for collection items.
//
// The browser version of the planner derived item ids from the current
// clock tick, which collides when two items are created in the same
// millisecond. UUIDv7 keeps the time-ordering property without the
// collision risk.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a new time-ordered UUIDv7 string.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source is exhausted; fall back
		// to a random v4 rather than propagate an error for an id.
		return googleuuid.NewString()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
