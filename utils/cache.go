// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"wayfare/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client, used for places/hotel/transit
// API response caching.
var CacheClient *redis.Client

// PlacesCacheTTL is the time-to-live for cached places API responses.
const PlacesCacheTTL = 6 * time.Hour

// InitCache initializes the generic Redis cache client (using DB from AppConfig).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
