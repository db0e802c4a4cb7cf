package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/util/constant"
	"github.com/neko-project/nekopay/util/log"
	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

// RedisInit Redis 连接初始化
func RedisInit() {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     config.GetRedisAddr(),
		Password: config.GetRedisPassword(),
		DB:       config.GetRedisDb(),
	})
	if err := Rdb.Ping(context.Background()).Err(); err != nil {
		log.Sugar.Errorf("[store_redis] redis ping failed, err=%v", err)
		panic(err)
	}
	log.Sugar.Info("[store_redis] redis connect success")
}

// RedisStore 槽位以字符串形式存放，永不过期
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, slotKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", constant.SlotNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, slotKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, slotKey(key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func slotKey(key string) string {
	return fmt.Sprintf("slot:%s", key)
}
