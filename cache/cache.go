// Package cache holds recently built game analyses in Redis so repeated
// report renders do not have to re-aggregate from the database. The cache is
// optional; the controller works without one.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/victorres11/football-data-adhoc/model"
)

// Completed games keep their analysis longer than live ones, which are
// re-analyzed as new plays arrive.
const (
	LiveGameTTL  = 2 * time.Minute
	FinalGameTTL = 6 * time.Hour
)

// ErrCacheMiss is returned when no analysis is cached for the key.
var ErrCacheMiss = errors.New("cache miss")

type Cache struct {
	client *redis.Client
}

// New connects to Redis using a URL like redis://localhost:6379 and verifies
// the connection.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	return &Cache{client: client}, nil
}

// NewForTest builds a cache without verifying the connection, so tests can
// point it at unreachable servers.
func NewForTest(redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis URL: %w", err)
	}
	return &Cache{client: redis.NewClient(opts)}, nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) WriteGameAnalysis(ctx context.Context, a *model.GameAnalysis) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("error marshaling analysis: %w", err)
	}

	ttl := LiveGameTTL
	if a.Game.Completed {
		ttl = FinalGameTTL
	}
	return c.client.Set(ctx, analysisKey(a.Game.ID, a.Team), data, ttl).Err()
}

func (c *Cache) ReadGameAnalysis(ctx context.Context, gameID, team string) (*model.GameAnalysis, error) {
	data, err := c.client.Get(ctx, analysisKey(gameID, team)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("error reading analysis from redis: %w", err)
	}

	var a model.GameAnalysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("error unmarshaling cached analysis: %w", err)
	}
	return &a, nil
}

func analysisKey(gameID, team string) string {
	return fmt.Sprintf("analysis:%s:%s", gameID, team)
}
