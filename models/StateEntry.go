package models

import "time"

// StateEntry is one persisted aggregate blob, keyed by a fixed storage
// identifier. Every mutation of an aggregate re-serializes and upserts its
// entry; stored payloads carry no version or migration metadata.
type StateEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName pins the storage table name.
func (StateEntry) TableName() string {
	return "state_entries"
}
