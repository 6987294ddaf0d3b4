// Package redisstore provides a Redis-backed document store.
// Each collection is a Redis list of JSON documents in insertion order.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portfolio/portfolio/internal/store"
)

// Collection keys.
const (
	contactsKey = "portfolio:contacts"
	projectsKey = "portfolio:projects"
)

// Store is a document store backed by Redis lists.
type Store struct {
	client *redis.Client
}

var _ store.Store = (*Store)(nil)

// New creates a new Store with a Redis client.
// The client connects lazily; only a malformed URL is an error.
func New(redisURL string) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	// Connection pool settings
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	return &Store{client: redis.NewClient(opt)}, nil
}

// NewFromClient wraps an existing client. The Store takes ownership of it.
func NewFromClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Ping checks Redis connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w: %w", store.ErrUnavailable, err)
	}
	return nil
}

// Close closes the Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Client returns the underlying Redis client.
// Use sparingly - prefer adding methods to Store.
func (s *Store) Client() *redis.Client {
	return s.client
}

func (s *Store) push(ctx context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return s.client.RPush(ctx, key, data).Err()
}

// list decodes every document in key, calling decode once per entry.
func (s *Store) list(ctx context.Context, key string, decode func([]byte) error) error {
	values, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return err
	}

	for _, v := range values {
		if err := decode([]byte(v)); err != nil {
			return fmt.Errorf("failed to decode document: %w", err)
		}
	}

	return nil
}
