// Package cache provides Redis-backed caching of computed quotes so repeated
// what-if requests with identical parameters skip the engine and the
// persistence path stays untouched.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"server/internal/domain"
)

// QuoteCache caches computed quotes keyed by a digest of the campaign input.
// A nil *QuoteCache is valid and behaves as a cache that never hits.
type QuoteCache struct {
	client *redis.Client
	logger zerolog.Logger
	ttl    time.Duration
}

// NewQuoteCache wraps the given Redis client. Returns nil when client is nil
// so callers can pass the result around without nil checks at every site.
func NewQuoteCache(client *redis.Client, logger zerolog.Logger, ttl time.Duration) *QuoteCache {
	if client == nil {
		return nil
	}
	return &QuoteCache{client: client, logger: logger, ttl: ttl}
}

// Get returns the cached quote for the input, or nil on miss. Cache errors
// are logged and treated as misses.
func (c *QuoteCache) Get(ctx context.Context, input domain.CampaignInput) *domain.Quote {
	if c == nil {
		return nil
	}
	data, err := c.client.Get(ctx, Key(input)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("quote cache get failed")
		return nil
	}
	var quote domain.Quote
	if err := json.Unmarshal([]byte(data), &quote); err != nil {
		c.logger.Warn().Err(err).Msg("quote cache entry corrupt")
		return nil
	}
	return &quote
}

// Set stores a computed quote under its input digest.
func (c *QuoteCache) Set(ctx context.Context, quote *domain.Quote) {
	if c == nil || quote == nil {
		return
	}
	data, err := json.Marshal(quote)
	if err != nil {
		c.logger.Warn().Err(err).Msg("quote cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, Key(quote.Input), data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("quote cache set failed")
	}
}

// Key derives the cache key for a campaign input. The input struct has a
// stable field order, so its JSON encoding is a stable digest source.
func Key(input domain.CampaignInput) string {
	raw, _ := json.Marshal(input)
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("pricing:quote:%s", hex.EncodeToString(sum[:]))
}
