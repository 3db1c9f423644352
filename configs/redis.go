package configs

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func Redis() *redis.Client {
	return redisClient
}

// ConnectRedis opens the session store used for carts and contact-form
// cooldowns. The server refuses to start without it: carts must survive
// restarts.
func ConnectRedis(cfg *Config) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	redisClient = redis.NewClient(opt)

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Println("connected to redis")
}
