package database

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a Redis client using environment variables.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (default: 0)
func ConnectRedis() *redis.Client {
	db, err := strconv.Atoi(getenvDefault("REDIS_DB", "0"))
	if err != nil {
		log.Fatalf("invalid REDIS_DB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password:     getenvDefault("REDIS_PASSWORD", ""),
		DB:           db,
		PoolSize:     50,
		MinIdleConns: 5,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	return rdb
}
