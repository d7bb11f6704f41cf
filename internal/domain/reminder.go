package domain

import "context"

type Reminder struct {
	ReminderID      uint       `gorm:"primaryKey;autoIncrement" json:"reminderId"`
	UserID          uint       `gorm:"index" json:"userId"`
	Title           string     `gorm:"size:128" json:"title"`
	Description     string     `gorm:"size:512" json:"description"`
	ReminderDate    *Date      `gorm:"type:date" json:"reminderDate"`
	ReminderTime    *TimeOfDay `gorm:"type:time" json:"reminderTime"`
	IsRepeating     *bool      `json:"isRepeating"`
	RepeatFrequency string     `gorm:"size:32" json:"repeatFrequency"`
	IsActive        *bool      `json:"isActive"`
}

func (Reminder) TableName() string { return "reminders" }

// Active 为 nil 视为激活（历史数据兼容）
func (r *Reminder) Active() bool { return r.IsActive == nil || *r.IsActive }

type ReminderRepository interface {
	Create(ctx context.Context, rec *Reminder) error
	FindByID(ctx context.Context, id uint) (*Reminder, error)
	FindByUserID(ctx context.Context, userID uint) ([]Reminder, error)
	Save(ctx context.Context, rec *Reminder) error
}
