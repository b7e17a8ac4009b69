package kernel

import (
	"github.com/google/uuid"
)

// UUID is a value object identifying a single label render request. It wraps
// the github.com/google/uuid implementation so the rest of the domain never
// touches the library type directly.
//
// UUID is immutable and safe for concurrent use.
//
// Example:
//
//	id := kernel.NewUUID()
//	cache.Store(key, id)
//	if cache.Latest(key).IsEqual(id) {
//	    // this render is still the current one
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// String returns the standard textual representation,
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx".
func (u UUID) String() string {
	return u.id.String()
}

// IsEqual compares two UUIDs for equality.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}
