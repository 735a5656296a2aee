package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// InitRedisServer connects the client used for the refresh-token session store.
func InitRedisServer(ctx context.Context) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_ADDRESS"),
		Password: "",
		DB:       0,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("[REDIS] Failed to connect: %v", err)
	}

	return client
}
