package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/StayBooker/internal/domain"
)

// ListingCache keeps listing snapshots, blocked ranges included, in Redis.
// Writers invalidate the entry whenever the ledger changes.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

func listingKey(id string) string {
	return fmt.Sprintf("listing:%s:details", id)
}

func (c *ListingCache) Get(ctx context.Context, id string) (*domain.Listing, error) {
	data, err := c.client.Get(ctx, listingKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // cache miss
		}
		return nil, fmt.Errorf("get cached listing: %w", err)
	}

	var l domain.Listing
	if err = json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode cached listing: %w", err)
	}

	return &l, nil
}

func (c *ListingCache) Set(ctx context.Context, l *domain.Listing) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode listing: %w", err)
	}

	return c.client.Set(ctx, listingKey(l.ID), data, c.ttl).Err()
}

func (c *ListingCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, listingKey(id)).Err()
}

// Noop is used when Redis is disabled. Every read is a miss.
type Noop struct{}

func (Noop) Get(context.Context, string) (*domain.Listing, error) { return nil, nil }
func (Noop) Set(context.Context, *domain.Listing) error           { return nil }
func (Noop) Invalidate(context.Context, string) error             { return nil }
