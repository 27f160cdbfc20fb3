package utils

import (
	"context"
	"log"
	"time"

	"verdanta/config"

	"github.com/go-redis/redis/v8"
)

// RedisClient backs the contact-form cooldown keys.
var RedisClient *redis.Client

// InitRedis initializes the Redis client.
func InitRedis() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		// The cooldown fails open, so a missing Redis is not fatal.
		log.Printf("Redis unavailable at startup: %v", err)
	}
}

// GetRedisClient returns the Redis client.
func GetRedisClient() *redis.Client {
	if RedisClient == nil {
		InitRedis()
	}
	return RedisClient
}
