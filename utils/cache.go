// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"staygrid/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// GridSessionClient is the dedicated client for grid selection sessions.
	GridSessionClient *redis.Client
	// NotifyClient is the dedicated client for admin notifications.
	NotifyClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (DB %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	GridSessionClient = newRedisClient(config.AppConfig.RedisGridSessionDB)
	NotifyClient = newRedisClient(config.AppConfig.RedisNotifyDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetGridSessionClient returns the Redis client backing grid selection sessions.
func GetGridSessionClient() *redis.Client {
	if GridSessionClient == nil {
		GridSessionClient = newRedisClient(config.AppConfig.RedisGridSessionDB)
	}
	return GridSessionClient
}

// GetNotifyClient returns the Redis client backing admin notifications.
func GetNotifyClient() *redis.Client {
	if NotifyClient == nil {
		NotifyClient = newRedisClient(config.AppConfig.RedisNotifyDB)
	}
	return NotifyClient
}
