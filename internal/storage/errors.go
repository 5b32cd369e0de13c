package storage

import "errors"

// Storage error kinds; match with errors.Is
var (
	// ErrCorruptPayload indicates the stored collection could not be decoded
	ErrCorruptPayload = errors.New("stored task collection is corrupted")

	// ErrStorageUnavailable indicates the backing store could not be read or written
	ErrStorageUnavailable = errors.New("task storage unavailable")

	// ErrQuotaExceeded indicates a write larger than the store allows
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrTaskNotFound indicates no record matches the given id
	ErrTaskNotFound = errors.New("task not found")
)
