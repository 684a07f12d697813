// Package cache holds the redis read-through cache in front of the
// leaderboard query. Entries carry a fixed TTL, which is the whole staleness
// contract: within the TTL the board may lag habit mutations.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/limetree/momentum/pkg/cleanup"
	"github.com/limetree/momentum/pkg/entity"
)

const boardKey = "leaderboard:view"

var ErrMiss = errors.New("cache miss")

type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *LeaderboardCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &LeaderboardCache{
		client: client,
		ttl:    ttl,
	}
}

func NewWithClient(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *LeaderboardCache) GetBoard(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	raw, err := c.client.Get(ctx, boardKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, errors.New("reading cached leaderboard error: " + err.Error())
	}
	var entries []*entity.LeaderboardEntry
	if err = sonic.Unmarshal(raw, &entries); err != nil {
		return nil, errors.New("unmarshalling cached leaderboard error: " + err.Error())
	}
	return entries, nil
}

func (c *LeaderboardCache) SetBoard(ctx context.Context, entries []*entity.LeaderboardEntry) error {
	raw, err := sonic.Marshal(entries)
	if err != nil {
		return errors.New("marshalling leaderboard error: " + err.Error())
	}
	if err = c.client.Set(ctx, boardKey, raw, c.ttl).Err(); err != nil {
		return errors.New("writing cached leaderboard error: " + err.Error())
	}
	return nil
}
