package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ovapal-api/internal/domain"
)

type PeriodRecordRepo struct{ db *gorm.DB }

func NewPeriodRecordRepo(db *gorm.DB) *PeriodRecordRepo { return &PeriodRecordRepo{db: db} }

func (r *PeriodRecordRepo) Create(ctx context.Context, rec *domain.PeriodRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *PeriodRecordRepo) FindByID(ctx context.Context, id uint) (*domain.PeriodRecord, error) {
	var rec domain.PeriodRecord
	err := r.db.WithContext(ctx).First(&rec, "period_rec_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PeriodRecordRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.PeriodRecord, error) {
	var recs []domain.PeriodRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("period_rec_id").
		Find(&recs).Error
	return recs, err
}

func (r *PeriodRecordRepo) Save(ctx context.Context, rec *domain.PeriodRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
