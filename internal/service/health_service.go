package service

import (
	"context"

	"go.uber.org/zap"

	"ovapal-api/internal/apperr"
	"ovapal-api/internal/domain"
)

type HealthService struct {
	guard   UserGuard
	records domain.HealthRecordRepository
	log     *zap.Logger
}

func NewHealthService(guard UserGuard, records domain.HealthRecordRepository, log *zap.Logger) *HealthService {
	return &HealthService{guard: guard, records: records, log: log}
}

func (s *HealthService) List(ctx context.Context, userID uint) ([]domain.HealthRecord, error) {
	if err := s.guard.EnsureExists(ctx, userID); err != nil {
		return nil, err
	}
	recs, err := s.records.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.log.Info("health records fetched", zap.Uint("user_id", userID), zap.Int("count", len(recs)))
	if recs == nil {
		recs = []domain.HealthRecord{}
	}
	return recs, nil
}

func (s *HealthService) Create(ctx context.Context, rec *domain.HealthRecord) (*domain.HealthRecord, error) {
	if err := s.guard.EnsureExists(ctx, rec.UserID); err != nil {
		return nil, err
	}
	if err := ValidateHealthRecord(rec); err != nil {
		return nil, err
	}
	if rec.RecordDate == nil {
		today := domain.Today()
		rec.RecordDate = &today
	}
	if err := s.records.Create(ctx, rec); err != nil {
		return nil, err
	}
	s.log.Info("health record saved", zap.Uint("health_id", rec.HealthID), zap.Uint("user_id", rec.UserID))
	return rec, nil
}

func (s *HealthService) Update(ctx context.Context, healthID uint, rec *domain.HealthRecord) (*domain.HealthRecord, error) {
	if err := s.guard.EnsureExists(ctx, rec.UserID); err != nil {
		return nil, err
	}
	existing, err := s.records.FindByID(ctx, healthID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFoundf("Health record not found with ID: %d", healthID)
	}
	// 归属校验：比对库里的属主与请求声明的 userId
	if existing.UserID != rec.UserID {
		s.log.Warn("user mismatch on health record", zap.Uint("health_id", healthID))
		return nil, apperr.Invalid("Health record does not belong to this user")
	}
	rec.HealthID = healthID
	if err := ValidateHealthRecord(rec); err != nil {
		return nil, err
	}
	if rec.RecordDate == nil {
		today := domain.Today()
		rec.RecordDate = &today
	}
	if err := s.records.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.log.Info("health record updated", zap.Uint("health_id", healthID))
	return rec, nil
}
