// Package customdict persists user-taught names in Redis so they survive
// restarts and are shared between instances. Names are kept in one set per
// category ("first" / "last") and merged into the in-memory vocabularies at
// startup.
package customdict

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "custom_names:"

// Store wraps a Redis client holding the custom name sets.
type Store struct {
	client *redis.Client
}

// New creates a Store backed by the provided Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Add inserts a name into the category set.
func (s *Store) Add(ctx context.Context, category, name string) error {
	return s.client.SAdd(ctx, keyPrefix+category, normalize(name)).Err()
}

// Remove deletes a name from the category set.
func (s *Store) Remove(ctx context.Context, category, name string) error {
	return s.client.SRem(ctx, keyPrefix+category, normalize(name)).Err()
}

// All returns every name stored under the category.
func (s *Store) All(ctx context.Context, category string) ([]string, error) {
	return s.client.SMembers(ctx, keyPrefix+category).Result()
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
