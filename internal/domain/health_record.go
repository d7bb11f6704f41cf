package domain

import "context"

type HealthRecord struct {
	HealthID               uint     `gorm:"primaryKey;autoIncrement" json:"healthId"`
	UserID                 uint     `gorm:"index" json:"userId"`
	RecordDate             *Date    `gorm:"type:date" json:"recordDate"`
	Weight                 *float64 `json:"weight"`
	Height                 *float64 `json:"height"`
	Temperature            *float64 `json:"temperature"`
	HeartRate              *int     `json:"heartRate"`
	BloodPressureSystolic  *int     `json:"bloodPressureSystolic"`
	BloodPressureDiastolic *int     `json:"bloodPressureDiastolic"`
	Notes                  string   `gorm:"size:1024" json:"notes"`
}

func (HealthRecord) TableName() string { return "health_records" }

type HealthRecordRepository interface {
	Create(ctx context.Context, rec *HealthRecord) error
	FindByID(ctx context.Context, id uint) (*HealthRecord, error)
	FindByUserID(ctx context.Context, userID uint) ([]HealthRecord, error)
	Save(ctx context.Context, rec *HealthRecord) error
}
