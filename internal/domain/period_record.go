package domain

import "context"

// Flow 取值习惯上为 Light/Medium/Heavy，存储不做枚举约束
type PeriodRecord struct {
	PeriodRecID uint   `gorm:"primaryKey;autoIncrement" json:"periodRecId"`
	UserID      uint   `gorm:"index" json:"userId"`
	StartDate   *Date  `gorm:"type:date" json:"startDate"`
	EndDate     *Date  `gorm:"type:date" json:"endDate"`
	Flow        string `gorm:"size:32" json:"flow"`
	Symptoms    string `gorm:"size:512" json:"symptoms"`
	Mood        string `gorm:"size:128" json:"mood"`
	Notes       string `gorm:"size:1024" json:"notes"`
}

func (PeriodRecord) TableName() string { return "period_records" }

type PeriodRecordRepository interface {
	Create(ctx context.Context, rec *PeriodRecord) error
	FindByID(ctx context.Context, id uint) (*PeriodRecord, error)
	FindByUserID(ctx context.Context, userID uint) ([]PeriodRecord, error)
	Save(ctx context.Context, rec *PeriodRecord) error
}
