package config

import (
	"log"
	"os"

	"Gimmi/services/redis"
)

// ConnectRedis opens the Redis connection used for presence and chat state
func ConnectRedis() (*redis.RedisClient, error) {
	redisURI := os.Getenv("REDIS_URL")
	if redisURI == "" {
		redisURI = "localhost:6379"
	}

	redisClient, err := redis.InitRedis(redisURI, 0)
	if err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return redisClient, nil
}
