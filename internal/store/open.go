package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/showbox/internal/domain"
)

// Driver selects the persistence backend
type Driver string

const (
	DriverBolt   Driver = "bolt"
	DriverMemory Driver = "memory"
	DriverRedis  Driver = "redis"
)

// Options configures Open
type Options struct {
	Driver    Driver
	Dir       string // bolt: base directory
	Namespace string // bolt: subdirectory key; redis: key prefix
	RedisURL  string
}

// Open creates the configured persistence backend.
func Open(opts Options, logger *slog.Logger) (domain.KeyValueStore, error) {
	switch opts.Driver {
	case DriverBolt, "":
		return NewBoltStore(opts.Dir, opts.Namespace)

	case DriverMemory:
		return NewMemoryStore(), nil

	case DriverRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis driver requires a URL")
		}
		prefix := ""
		if opts.Namespace != "" {
			prefix = defaultRedisPrefix + hashNamespace(opts.Namespace) + ":"
		}
		rs, err := NewRedisStoreFromURL(opts.RedisURL, prefix, logger)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rs.Ping(ctx); err != nil {
			rs.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return rs, nil

	default:
		return nil, fmt.Errorf("unknown storage driver: %s", opts.Driver)
	}
}
