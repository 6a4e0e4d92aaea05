package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	keyAllItems       = "menu:items:all"
	keyCategoryPrefix = "menu:items:category:"
)

// MenuCache stores serialized catalog listings. A miss is reported as
// (nil, false, nil).
type MenuCache interface {
	GetItems(ctx context.Context, category *domain.Category) ([]domain.MenuItem, bool, error)
	SetItems(ctx context.Context, category *domain.Category, items []domain.MenuItem) error
	Invalidate(ctx context.Context) error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func itemsKey(category *domain.Category) string {
	if category == nil {
		return keyAllItems
	}
	return keyCategoryPrefix + string(*category)
}

func (c *RedisCache) GetItems(ctx context.Context, category *domain.Category) ([]domain.MenuItem, bool, error) {
	raw, err := c.client.Get(ctx, itemsKey(category)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read menu cache: %w", err)
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("failed to decode menu cache: %w", err)
	}

	return items, true, nil
}

func (c *RedisCache) SetItems(ctx context.Context, category *domain.Category, items []domain.MenuItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode menu cache: %w", err)
	}

	return c.client.Set(ctx, itemsKey(category), raw, c.ttl).Err()
}

// Invalidate drops every cached listing. Only the known categories are ever
// cached, so the key set is fixed.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	keys := []string{keyAllItems}
	for _, category := range domain.Categories {
		category := category
		keys = append(keys, itemsKey(&category))
	}

	return c.client.Del(ctx, keys...).Err()
}
