// Package store persists the signed-in user's profile in a small key-value store.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/brizzai/map-signin/internal/config"
)

// UserKey is the single key the profile is stored under
const UserKey = "@user"

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("store is closed")

// Store is a string key-value store. Get reports a missing key with ok=false.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Open creates the store backend selected by the configuration
func Open(cfg *config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		return NewSQLiteStore(cfg.Path)
	case config.StoreDriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}
