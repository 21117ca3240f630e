package models

import "time"

// StorageEntry is one key of the demo's persisted key-value store.
type StorageEntry struct {
	Namespace string    `gorm:"column:namespace;type:varchar(64);primaryKey"`
	Key       string    `gorm:"column:entry_key;type:varchar(128);primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (StorageEntry) TableName() string {
	return "demo_storage_entries"
}
