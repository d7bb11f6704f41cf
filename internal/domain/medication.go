package domain

import "context"

type Medication struct {
	MedicationID uint   `gorm:"primaryKey;autoIncrement" json:"medicationId"`
	UserID       uint   `gorm:"index" json:"userId"`
	Medicine     string `gorm:"size:128" json:"medicine"`
	Dosage       string `gorm:"size:64" json:"dosage"`
	Frequency    string `gorm:"size:64" json:"frequency"`
	StartDate    *Date  `gorm:"type:date" json:"startDate"`
	EndDate      *Date  `gorm:"type:date" json:"endDate"`
	Notes        string `gorm:"size:1024" json:"notes"`
}

func (Medication) TableName() string { return "medications" }

// Current 无结束日期或结束日期不早于 today 视为仍在服用
func (m *Medication) Current(today Date) bool {
	return m.EndDate == nil || !m.EndDate.Before(today.Time)
}

type MedicationRepository interface {
	Create(ctx context.Context, rec *Medication) error
	FindByID(ctx context.Context, id uint) (*Medication, error)
	FindByUserID(ctx context.Context, userID uint) ([]Medication, error)
	Save(ctx context.Context, rec *Medication) error
	Delete(ctx context.Context, id uint) error
}
