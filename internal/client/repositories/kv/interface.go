package kv

import "context"

// Repository is a string-keyed blob store. It is the durable medium for the
// credential store: the account list lives under one key, the session under
// another, and each mutation rewrites the value as a whole.
type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// List returns all key/value pairs.
	List(ctx context.Context) (map[string][]byte, error)
}
