// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// preview.go provides a Valkey-backed cache of rendered previews (L2).
// When the admin previews a certificate template or a page, the rendered
// HTML is stored here so repeated previews skip the DB load and render.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// previewKeyPrefix namespaces preview keys in Valkey.
	previewKeyPrefix = "preview:"

	// DefaultPreviewTTL is how long a rendered preview stays cached.
	DefaultPreviewTTL = 5 * time.Minute
)

// PreviewCache manages rendered preview HTML in Valkey.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a preview cache backed by the given Valkey client.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl == 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// TemplateKey returns the cache key for a certificate template preview.
func TemplateKey(id string) string {
	return "template:" + id
}

// PageKey returns the cache key for a page preview.
func PageKey(id string) string {
	return "page:" + id
}

// Get retrieves cached HTML for a preview key. Returns false on miss.
func (pc *PreviewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, previewKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("preview cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("preview cache hit", "key", key)
	return val, true
}

// Set stores rendered HTML for a preview key with the configured TTL.
func (pc *PreviewCache) Set(ctx context.Context, key string, html []byte) {
	if err := pc.client.Set(ctx, previewKeyPrefix+key, html, pc.ttl).Err(); err != nil {
		slog.Warn("preview cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single preview from the cache. Called after any
// save of the underlying template or page.
func (pc *PreviewCache) Invalidate(ctx context.Context, key string) {
	if err := pc.client.Del(ctx, previewKeyPrefix+key).Err(); err != nil {
		slog.Warn("preview cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("preview cache invalidated", "key", key)
}

// InvalidateAll removes every cached preview by scanning for the prefix.
// Used when shared assets change, since any preview could embed them.
func (pc *PreviewCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, previewKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("preview cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("preview cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("preview cache fully cleared", "deleted", deleted)
	}
}
