package cache

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// StoreTemperature caches a resolved temperature for a city with expiration.
func (r *RedisClient) StoreTemperature(city string, temperature float64, duration time.Duration) error {
	key := fmt.Sprintf("temp:%s", city)

	err := r.client.Set(r.ctx, key, temperature, duration).Err()
	if err != nil {
		return fmt.Errorf("failed to store temperature in Redis: %w", err)
	}

	return nil
}

// GetTemperature returns a cached temperature for a city, if present.
func (r *RedisClient) GetTemperature(city string) (float64, bool, error) {
	key := fmt.Sprintf("temp:%s", city)

	data, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil // Key doesn't exist
		}
		return 0, false, fmt.Errorf("failed to get temperature from Redis: %w", err)
	}

	temperature, err := strconv.ParseFloat(data, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse cached temperature: %w", err)
	}

	return temperature, true, nil
}
