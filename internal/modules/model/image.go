package model

import (
	"time"
)

type SourceImage struct {
	Id                  int       `json:"id" gorm:"primaryKey"`
	Path                string    `json:"path" gorm:"column:path;type:varchar(255)"`
	StorageSupplierName string    `json:"storage_supplier_name" gorm:"column:storage_supplier_name;type:varchar(20)"`
	Key                 string    `json:"key" gorm:"column:key;type:varchar(100)"`
	URL                 string    `json:"url" gorm:"column:url;type:varchar(500)"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (SourceImage) TableName() string {
	return "source_image"
}

type MockupImage struct {
	Id                  int       `json:"id" gorm:"primaryKey"`
	ResultId            string    `json:"result_id" gorm:"column:result_id;type:varchar(50);uniqueIndex"`
	BatchId             string    `json:"batch_id" gorm:"column:batch_id;type:varchar(50)"`
	Medium              string    `json:"medium" gorm:"column:medium;type:varchar(20)"`
	AspectRatio         string    `json:"aspect_ratio" gorm:"column:aspect_ratio;type:varchar(10)"`
	Path                string    `json:"path" gorm:"column:path;type:varchar(255)"`
	ThumbnailKey        string    `json:"thumbnail_key" gorm:"column:thumbnail_key;type:varchar(100)"`
	StorageSupplierName string    `json:"storage_supplier_name" gorm:"column:storage_supplier_name;type:varchar(20)"`
	Key                 string    `json:"key" gorm:"column:key;type:varchar(100)"`
	URL                 string    `json:"url" gorm:"column:url;type:varchar(500)"`
	ModelSupplierURL    string    `json:"model_supplier_url" gorm:"column:model_supplier_url;type:varchar(500)"`
	ModelSupplierName   string    `json:"model_supplier_name" gorm:"column:model_supplier_name;type:varchar(20)"`
	ModelName           string    `json:"model_name" gorm:"column:model_name;type:varchar(30)"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (MockupImage) TableName() string {
	return "mockup_image"
}
