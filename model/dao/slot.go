package dao

import (
	"context"
	"sync"

	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/util/constant"
	"github.com/neko-project/nekopay/util/log"
)

// SlotStore 持久化键值槽位，一个 key 对应一份 JSON
type SlotStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// Slots 全局槽位存储
var Slots SlotStore = NewMemoryStore()

// StoreInit 按配置选择槽位存储驱动
func StoreInit() {
	switch config.GetStoreDriver() {
	case config.StoreDriverMysql:
		MysqlInit()
		Slots = NewMysqlStore(Mdb)
	case config.StoreDriverRedis:
		RedisInit()
		Slots = NewRedisStore(Rdb)
	default:
		Slots = NewMemoryStore()
	}
	log.Sugar.Infof("[store] slot store driver: %s", config.GetStoreDriver())
}

// MemoryStore 进程内存储
type MemoryStore struct {
	slots sync.Map
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	value, ok := m.slots.Load(key)
	if !ok {
		return "", constant.SlotNotFound
	}
	return value.(string), nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.slots.Store(key, value)
	return nil
}

func (m *MemoryStore) Del(_ context.Context, key string) error {
	m.slots.Delete(key)
	return nil
}
