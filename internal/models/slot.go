package models

import "time"

// KeyValue is a single named slot in the sqlite store
type KeyValue struct {
	Key       string    `gorm:"primaryKey;column:name" json:"name"`
	Value     []byte    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name stable regardless of gorm's pluralization
func (KeyValue) TableName() string {
	return "slots"
}
