package database

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/kalyan0128/Humanlike-awarebot/internal/config"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

// InitRedis connects to Redis if configured. Without Redis the app still works:
// dashboard caching and token revocation become no-ops.
func InitRedis() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, running without Redis")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Caching and token revocation will be disabled.", err)
		return
	}

	Redis = client
	log.Println("Connected to Redis successfully")
}

// Token revocation (logout)

func BlacklistToken(jti string, ttl time.Duration) error {
	if Redis == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return Redis.Set(Ctx, "token_blacklist:"+jti, "1", ttl).Err()
}

func IsTokenBlacklisted(jti string) bool {
	if Redis == nil || jti == "" {
		return false
	}
	n, err := Redis.Exists(Ctx, "token_blacklist:"+jti).Result()
	return err == nil && n > 0
}

// Caching

func CacheSet(key string, value interface{}, expiration time.Duration) error {
	if Redis == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(Ctx, key, data, expiration).Err()
}

// CacheGet returns true when the key was found and decoded into dest.
func CacheGet(key string, dest interface{}) bool {
	if Redis == nil {
		return false
	}
	val, err := Redis.Get(Ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func CacheInvalidate(keys ...string) {
	if Redis == nil || len(keys) == 0 {
		return
	}
	Redis.Del(Ctx, keys...)
}
