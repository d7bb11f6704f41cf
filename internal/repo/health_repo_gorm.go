package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ovapal-api/internal/domain"
)

type HealthRecordRepo struct{ db *gorm.DB }

func NewHealthRecordRepo(db *gorm.DB) *HealthRecordRepo { return &HealthRecordRepo{db: db} }

func (r *HealthRecordRepo) Create(ctx context.Context, rec *domain.HealthRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *HealthRecordRepo) FindByID(ctx context.Context, id uint) (*domain.HealthRecord, error) {
	var rec domain.HealthRecord
	err := r.db.WithContext(ctx).First(&rec, "health_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *HealthRecordRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.HealthRecord, error) {
	var recs []domain.HealthRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("health_id").
		Find(&recs).Error
	return recs, err
}

func (r *HealthRecordRepo) Save(ctx context.Context, rec *domain.HealthRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
