package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sixsevendeals/affiliate-api/internal/domain"
)

const defaultTTL = 10 * time.Minute

// Entry is a cached catalog snapshot together with the source tag it
// was built from.
type Entry struct {
	Source   string           `json:"source"`
	Products []domain.Product `json:"products"`
}

// Cache stores the normalized live catalog in Redis so consecutive
// requests do not re-scrape the website within the TTL.
type Cache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(client *redis.Client, scrapeURL string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, key: buildKey(scrapeURL), ttl: ttl}
}

func buildKey(scrapeURL string) string {
	return fmt.Sprintf("catalog:products:%s", scrapeURL)
}

// Get returns the cached catalog snapshot, if any.
func (c *Cache) Get(ctx context.Context) (Entry, bool, error) {
	val, err := c.client.Get(ctx, c.key).Result()
	if err == redis.Nil {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to get catalog from cache: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return Entry{}, false, fmt.Errorf("failed to unmarshal catalog %s: %w", c.key, err)
	}
	return entry, true, nil
}

// Set stores a catalog snapshot with the configured TTL.
func (c *Cache) Set(ctx context.Context, entry Entry) error {
	val, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := c.client.Set(ctx, c.key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set catalog in cache: %w", err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
