package services

import (
	"api/config"
	"api/metrics"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Leaderboards are cheap to recompute, the cache only smooths read bursts.
// A short TTL bounds staleness even if an invalidation is ever missed.
const leaderboardCacheTTL = 30 * time.Second

var cacheClient *redis.Client

// InitCache connects the optional Redis leaderboard cache. Without REDIS_ADDR
// every leaderboard read goes straight to the database.
func InitCache() {
	if config.RedisAddr == "" {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable, leaderboard cache disabled: %v", err)
		return
	}

	cacheClient = client
	log.Println("Leaderboard cache connected to Redis at", config.RedisAddr)
}

func leaderboardCacheKey(dayKey string) string {
	return fmt.Sprintf("leaderboard:%s", dayKey)
}

func cachedLeaderboard(dayKey string) ([]LeaderboardEntry, bool) {
	if cacheClient == nil {
		return nil, false
	}

	payload, err := cacheClient.Get(context.Background(), leaderboardCacheKey(dayKey)).Bytes()
	if err != nil {
		metrics.CacheMisses.Inc()
		return nil, false
	}

	var entries []LeaderboardEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		metrics.CacheMisses.Inc()
		return nil, false
	}

	metrics.CacheHits.Inc()
	return entries, true
}

func storeLeaderboard(dayKey string, entries []LeaderboardEntry) {
	if cacheClient == nil {
		return
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return
	}

	if err := cacheClient.Set(context.Background(), leaderboardCacheKey(dayKey), payload, leaderboardCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache leaderboard for %s: %v", dayKey, err)
	}
}

// InvalidateLeaderboard drops the cached leaderboard for a day. Called whenever
// the ledger accepts a solve for that day.
func InvalidateLeaderboard(dayKey string) {
	if cacheClient == nil {
		return
	}

	if err := cacheClient.Del(context.Background(), leaderboardCacheKey(dayKey)).Err(); err != nil {
		log.Printf("Failed to invalidate leaderboard cache for %s: %v", dayKey, err)
	}
}
