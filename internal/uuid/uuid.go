// Package uuid wraps github.com/google/uuid so that IDs can be bound
// from URI and query parameters by gin.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

// ErrInvalid is returned when a parameter is not a valid UUID.
var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam parses a URI or query parameter. An empty
// parameter results in the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return ErrInvalid
	}

	*u = UUID{parsed}
	return nil
}

// IsSet reports whether the UUID is not the Nil UUID.
func (u UUID) IsSet() bool {
	return u.UUID != google_uuid.Nil
}

// Ptr returns a pointer to the wrapped UUID, or nil if it is not set.
func (u UUID) Ptr() *google_uuid.UUID {
	if !u.IsSet() {
		return nil
	}

	id := u.UUID
	return &id
}
