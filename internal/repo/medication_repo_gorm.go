package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ovapal-api/internal/domain"
)

type MedicationRepo struct{ db *gorm.DB }

func NewMedicationRepo(db *gorm.DB) *MedicationRepo { return &MedicationRepo{db: db} }

func (r *MedicationRepo) Create(ctx context.Context, rec *domain.Medication) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *MedicationRepo) FindByID(ctx context.Context, id uint) (*domain.Medication, error) {
	var rec domain.Medication
	err := r.db.WithContext(ctx).First(&rec, "medication_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *MedicationRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.Medication, error) {
	var recs []domain.Medication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("medication_id").
		Find(&recs).Error
	return recs, err
}

func (r *MedicationRepo) Save(ctx context.Context, rec *domain.Medication) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Delete 物理删除（与提醒的软删不同，属既有行为）
func (r *MedicationRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Medication{}, "medication_id = ?", id).Error
}
