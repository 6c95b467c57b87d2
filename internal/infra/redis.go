package infra

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the settings cache. Redis is an optimization here, not
// a dependency: a failed ping is logged and the client returned anyway, and
// callers fall back to Postgres on cache errors.
func InitRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Warning: redis unreachable at %s: %v", addr, err)
	}

	return client
}

func CloseRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		log.Printf("Error closing redis client: %v", err)
	}
}
