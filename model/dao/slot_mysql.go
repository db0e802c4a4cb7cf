package dao

import (
	"context"
	"database/sql"
	"errors"

	"github.com/neko-project/nekopay/util/constant"
	"gorm.io/gorm"
)

// MysqlStore checkout_slot 表存储
type MysqlStore struct {
	db *gorm.DB
}

func NewMysqlStore(db *gorm.DB) *MysqlStore {
	return &MysqlStore{db: db}
}

func (s *MysqlStore) Get(ctx context.Context, key string) (string, error) {
	if s.db == nil {
		return "", constant.SlotStoreNotReady
	}
	var value string
	query := `SELECT slot_value FROM checkout_slot WHERE slot_key = ? LIMIT 1`
	err := s.db.WithContext(ctx).Raw(query, key).Row().Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", constant.SlotNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *MysqlStore) Set(ctx context.Context, key, value string) error {
	if s.db == nil {
		return constant.SlotStoreNotReady
	}
	query := `INSERT INTO checkout_slot (slot_key, slot_value, updated_at)
			 VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON DUPLICATE KEY UPDATE
			 slot_value = VALUES(slot_value),
			 updated_at = CURRENT_TIMESTAMP`
	return s.db.WithContext(ctx).Exec(query, key, value).Error
}

func (s *MysqlStore) Del(ctx context.Context, key string) error {
	if s.db == nil {
		return constant.SlotStoreNotReady
	}
	query := `DELETE FROM checkout_slot WHERE slot_key = ?`
	return s.db.WithContext(ctx).Exec(query, key).Error
}
