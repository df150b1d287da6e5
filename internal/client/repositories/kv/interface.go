// Package kv implements the local key/value store backing the session.
// Values are opaque bytes; no TTL, no encryption. Expiry of anything stored
// here is the server's concern.
package kv

import "context"

type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
