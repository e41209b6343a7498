// Package metadata persists the client's durable state: a handful of
// opaque key/value entries (the session token and username).
package metadata

import "context"

// Keys used by the session manager.
const (
	KeyToken    = "token"
	KeyUsername = "username"
)

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// Clear wipes every entry. Used on logout.
	Clear(ctx context.Context) error
}
