package model

import "time"

type SupplierInvokeHistory struct {
	Id             int       `json:"id" gorm:"primaryKey"`
	BatchId        string    `json:"batch_id" gorm:"column:batch_id;type:varchar(50)"`
	Medium         string    `json:"medium" gorm:"column:medium;type:varchar(20)"`
	SupplierName   string    `json:"supplier_name" gorm:"column:supplier_name;type:varchar(20)"`
	TokenDesc      string    `json:"token_desc" gorm:"column:token_desc;type:varchar(20)"`
	ModelName      string    `json:"model_name" gorm:"column:model_name;type:varchar(30)"`
	StatusCode     int       `json:"status_code" gorm:"column:status_code;type:int"`
	FailedRespBody string    `json:"failed_resp_body" gorm:"column:failed_resp_body;type:varchar(2000)"`
	DurationMs     int64     `json:"duration_ms" gorm:"column:duration_ms;type:int"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (SupplierInvokeHistory) TableName() string {
	return "supplier_invoke_history"
}
