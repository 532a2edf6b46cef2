package model

import "time"

// KVRecord backs flat text blobs stored under a fixed key, currently only
// the preset list.
type KVRecord struct {
	Key       string    `json:"key" gorm:"column:key;type:varchar(100);primaryKey"`
	Value     string    `json:"value" gorm:"column:value;type:longtext"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (KVRecord) TableName() string {
	return "kv_record"
}
