package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gruhalankar/roomdecor/internal/models"
	"github.com/redis/go-redis/v9"
)

// cacheTTL bounds how long an analysis for a given image hash is reused.
const cacheTTL = 24 * time.Hour

// Cache memoizes vision results in Redis keyed by image content hash, so
// re-uploading the same photo skips the LLM call. All methods degrade to
// cache misses on Redis errors.
type Cache struct {
	client *redis.Client
}

// NewCacheFromEnv returns a Redis-backed cache when REDIS_HOST is set,
// or nil (caching disabled) otherwise.
func NewCacheFromEnv() *Cache {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
	})
	slog.Info("Vision cache enabled", "addr", client.Options().Addr)
	return &Cache{client: client}
}

func (c *Cache) profileKey(imageHash string) string {
	return "room_profile:" + imageHash
}

func (c *Cache) analysisKey(imageHash string) string {
	return "room_analysis:" + imageHash
}

// GetProfile returns a cached room profile for the image hash.
func (c *Cache) GetProfile(ctx context.Context, imageHash string) (models.RoomProfile, bool) {
	var profile models.RoomProfile
	if !c.get(ctx, c.profileKey(imageHash), &profile) {
		return models.RoomProfile{}, false
	}
	return profile, true
}

// SetProfile caches a room profile for the image hash.
func (c *Cache) SetProfile(ctx context.Context, imageHash string, profile models.RoomProfile) {
	c.set(ctx, c.profileKey(imageHash), profile)
}

// GetAnalysis returns a cached suggestion analysis for the image hash.
func (c *Cache) GetAnalysis(ctx context.Context, imageHash string) (models.RoomAnalysis, bool) {
	var analysis models.RoomAnalysis
	if !c.get(ctx, c.analysisKey(imageHash), &analysis) {
		return models.RoomAnalysis{}, false
	}
	return analysis, true
}

// SetAnalysis caches a suggestion analysis for the image hash.
func (c *Cache) SetAnalysis(ctx context.Context, imageHash string, analysis models.RoomAnalysis) {
	c.set(ctx, c.analysisKey(imageHash), analysis)
}

func (c *Cache) get(ctx context.Context, key string, out interface{}) bool {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil || data == "" {
		return false
	}
	if err != nil {
		slog.Warn("Vision cache read failed", "key", key, "err", err)
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		// Stale or corrupt entry; drop it.
		c.client.Del(ctx, key)
		return false
	}
	return true
}

func (c *Cache) set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Vision cache marshal failed", "key", key, "err", err)
		return
	}
	if err := c.client.Set(ctx, key, string(data), cacheTTL).Err(); err != nil {
		slog.Warn("Vision cache write failed", "key", key, "err", err)
	}
}
