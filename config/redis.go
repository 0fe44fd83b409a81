package config

import (
	"context"
	"log"
	"time"

	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/redis/go-redis/v9"
)

// InitRedisDB connects to redis. It returns nil when addr is empty so callers can run without it.
func InitRedisDB(addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		log.Print("⚠️  REDIS_ADDR not set, running without ", utils.ColorText("Redis", utils.Yellow))
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}

	log.Print("✅ Connected to ", utils.ColorText("Redis", utils.Green), " successfully")
	return rdb, nil
}
