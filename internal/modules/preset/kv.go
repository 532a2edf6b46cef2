package preset

import (
	"errors"
	"time"

	"github.com/reusedev/mockup-hub/internal/components/mysql"
	"github.com/reusedev/mockup-hub/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKV persists blobs in the kv_record table.
type GormKV struct{}

func (GormKV) Get(key string) (string, bool, error) {
	var record model.KVRecord
	err := mysql.DB.Model(&model.KVRecord{}).Where("`key` = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return record.Value, true, nil
}

func (GormKV) Set(key, value string) error {
	record := model.KVRecord{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return mysql.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}
