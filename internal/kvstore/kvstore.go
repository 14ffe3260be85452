// Package kvstore provides the key-value persistence medium behind the
// domain state. Values are opaque byte strings; callers own serialization.
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"capstone-hub/config"
)

// ErrNotFound is returned by Read when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is a byte-string key-value medium.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Close()
}

// Open constructs a store backend by name.
func Open(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (Store, error) {
	switch cfg.Store.Backend {
	case "postgres":
		return OpenPostgres(ctx, cfg.Postgres.DSN(), log)
	case "file":
		return OpenFile(cfg.Store.Dir)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}
