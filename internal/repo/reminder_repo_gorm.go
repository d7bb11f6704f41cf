package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ovapal-api/internal/domain"
)

type ReminderRepo struct{ db *gorm.DB }

func NewReminderRepo(db *gorm.DB) *ReminderRepo { return &ReminderRepo{db: db} }

func (r *ReminderRepo) Create(ctx context.Context, rec *domain.Reminder) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ReminderRepo) FindByID(ctx context.Context, id uint) (*domain.Reminder, error) {
	var rec domain.Reminder
	err := r.db.WithContext(ctx).First(&rec, "reminder_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReminderRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.Reminder, error) {
	var recs []domain.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("reminder_id").
		Find(&recs).Error
	return recs, err
}

func (r *ReminderRepo) Save(ctx context.Context, rec *domain.Reminder) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
