package storage

import "github.com/google/uuid"

// IDGenerator produces task identifiers
type IDGenerator func() (string, error)

// NewTaskID returns a version 7 UUID: a millisecond timestamp followed by
// random bits, so ids sort roughly by creation time.
func NewTaskID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
