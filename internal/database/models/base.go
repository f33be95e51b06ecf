package models

import (
	"time"

	"github.com/google/uuid"
)

// Now returns the current time in UTC at the precision Postgres stores.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NextUpdatedAt returns the timestamp for a mutation of a row last touched at
// prev. The result is strictly after prev even when the clock has not moved.
func NextUpdatedAt(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}

// ensureID sets a UUID if the primary key was left empty
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
