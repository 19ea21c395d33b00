// Package storage provides the persisted key/value blob store behind the
// record store: whole-value get/set of named string blobs, with
// interchangeable backends.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/NoeTobes/FullStackWebApp/internal/config"
)

// KV is whole-value string storage keyed by name. Get reports presence
// separately from errors; a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Open constructs the backend selected by configuration.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (KV, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return NewMemory(), nil
	case "file":
		return NewFile(cfg.Storage.FileDir)
	case "redis":
		return NewRedis(cfg.Redis, cfg.Storage.Namespace, logger), nil
	case "postgres":
		return NewPostgres(ctx, cfg.Postgres, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}
