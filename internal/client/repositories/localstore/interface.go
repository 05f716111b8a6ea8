package localstore

import (
	"context"
	"errors"
)

// UpdateFunc receives the current value (nil when absent) and returns the
// value to store. Returning an error aborts the update.
type UpdateFunc func(current []byte) ([]byte, error)

// Store is a string-keyed byte store with atomic single-key updates.
type Store interface {
	// Get returns the stored value, or nil and no error if key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Update atomically replaces the value of key with fn(current).
	Update(ctx context.Context, key string, fn UpdateFunc) error

	// Close releases the backend.
	Close() error
}

var (
	ErrInvalidKey     = errors.New("invalid storage key")
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrConflict       = errors.New("concurrent update conflict")
)
