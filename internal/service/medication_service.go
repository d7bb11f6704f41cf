package service

import (
	"context"

	"go.uber.org/zap"

	"ovapal-api/internal/apperr"
	"ovapal-api/internal/domain"
)

type MedicationService struct {
	guard UserGuard
	meds  domain.MedicationRepository
	log   *zap.Logger
}

func NewMedicationService(guard UserGuard, meds domain.MedicationRepository, log *zap.Logger) *MedicationService {
	return &MedicationService{guard: guard, meds: meds, log: log}
}

// List 只返回当前用药：endDate 为空或不早于今天
func (s *MedicationService) List(ctx context.Context, userID uint) ([]domain.Medication, error) {
	if err := s.guard.EnsureExists(ctx, userID); err != nil {
		return nil, err
	}
	recs, err := s.meds.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := domain.Today()
	current := make([]domain.Medication, 0, len(recs))
	for _, m := range recs {
		if m.Current(today) {
			current = append(current, m)
		}
	}
	s.log.Info("current medications fetched", zap.Uint("user_id", userID), zap.Int("count", len(current)))
	return current, nil
}

func (s *MedicationService) Create(ctx context.Context, rec *domain.Medication) (*domain.Medication, error) {
	if err := s.guard.EnsureExists(ctx, rec.UserID); err != nil {
		return nil, err
	}
	if err := ValidateMedication(rec); err != nil {
		return nil, err
	}
	if err := s.meds.Create(ctx, rec); err != nil {
		return nil, err
	}
	s.log.Info("medication saved", zap.Uint("medication_id", rec.MedicationID), zap.Uint("user_id", rec.UserID))
	return rec, nil
}

func (s *MedicationService) Update(ctx context.Context, medicationID uint, rec *domain.Medication) (*domain.Medication, error) {
	if err := s.guard.EnsureExists(ctx, rec.UserID); err != nil {
		return nil, err
	}
	existing, err := s.meds.FindByID(ctx, medicationID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFoundf("Medication not found with ID: %d", medicationID)
	}
	if existing.UserID != rec.UserID {
		s.log.Warn("user mismatch on medication", zap.Uint("medication_id", medicationID))
		return nil, apperr.Invalid("Medication does not belong to this user")
	}
	rec.MedicationID = medicationID
	if err := ValidateMedication(rec); err != nil {
		return nil, err
	}
	if err := s.meds.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.log.Info("medication updated", zap.Uint("medication_id", medicationID))
	return rec, nil
}

// Delete 物理删除（提醒是软删，这里保持既有差异）
func (s *MedicationService) Delete(ctx context.Context, medicationID uint) error {
	existing, err := s.meds.FindByID(ctx, medicationID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFoundf("Medication not found with ID: %d", medicationID)
	}
	if err := s.meds.Delete(ctx, medicationID); err != nil {
		return err
	}
	s.log.Info("medication deleted", zap.Uint("medication_id", medicationID))
	return nil
}
