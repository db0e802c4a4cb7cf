package mdb

import "time"

// CheckoutSlot 键值槽位表
type CheckoutSlot struct {
	SlotKey   string    `gorm:"column:slot_key;primaryKey;size:64" json:"slot_key"`
	SlotValue string    `gorm:"column:slot_value;type:text" json:"slot_value"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (s *CheckoutSlot) TableName() string {
	return "checkout_slot"
}
