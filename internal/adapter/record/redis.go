// Package record persists raw simulation payloads in Redis.
package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/couchcryptid/impact-effects-service/internal/domain"
)

var _ domain.RecordStore = (*Store)(nil)

// Store is a write-only record store backed by Redis. Each record is a hash
// holding the verbatim body and its content type under the generated key.
type Store struct {
	client *redis.Client
	logger *slog.Logger
}

// NewStore creates a record store for the given Redis address.
func NewStore(addr string, logger *slog.Logger) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		logger: logger,
	}
}

// NewStoreFromURL creates a record store from a redis:// connection string.
func NewStoreFromURL(rawURL string, logger *slog.Logger) (*Store, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Store{client: redis.NewClient(opts), logger: logger}, nil
}

// Save writes the payload under key. Single attempt; callers surface the
// failure rather than retrying.
func (s *Store) Save(ctx context.Context, key string, body []byte, contentType string) error {
	if err := s.client.HSet(ctx, key, "body", body, "content_type", contentType).Err(); err != nil {
		return fmt.Errorf("redis save %s: %w", key, err)
	}
	return nil
}

// Ping reports whether the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
