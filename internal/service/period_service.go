package service

import (
	"context"

	"go.uber.org/zap"

	"ovapal-api/internal/apperr"
	"ovapal-api/internal/domain"
)

type PeriodService struct {
	guard   UserGuard
	records domain.PeriodRecordRepository
	log     *zap.Logger
}

func NewPeriodService(guard UserGuard, records domain.PeriodRecordRepository, log *zap.Logger) *PeriodService {
	return &PeriodService{guard: guard, records: records, log: log}
}

func (s *PeriodService) List(ctx context.Context, userID uint) ([]domain.PeriodRecord, error) {
	if err := s.guard.EnsureExists(ctx, userID); err != nil {
		return nil, err
	}
	recs, err := s.records.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.log.Info("period records fetched", zap.Uint("user_id", userID), zap.Int("count", len(recs)))
	if recs == nil {
		recs = []domain.PeriodRecord{}
	}
	return recs, nil
}

func (s *PeriodService) Create(ctx context.Context, rec *domain.PeriodRecord) (*domain.PeriodRecord, error) {
	if err := s.guard.EnsureExists(ctx, rec.UserID); err != nil {
		return nil, err
	}
	if err := ValidatePeriodRecord(rec); err != nil {
		return nil, err
	}
	s.warnLongSpan(rec)
	if err := s.records.Create(ctx, rec); err != nil {
		return nil, err
	}
	s.log.Info("period record saved", zap.Uint("period_rec_id", rec.PeriodRecID), zap.Uint("user_id", rec.UserID))
	return rec, nil
}

func (s *PeriodService) Update(ctx context.Context, periodRecID uint, rec *domain.PeriodRecord) (*domain.PeriodRecord, error) {
	if err := s.guard.EnsureExists(ctx, rec.UserID); err != nil {
		return nil, err
	}
	existing, err := s.records.FindByID(ctx, periodRecID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFoundf("Period record not found with ID: %d", periodRecID)
	}
	if existing.UserID != rec.UserID {
		s.log.Warn("user mismatch on period record", zap.Uint("period_rec_id", periodRecID))
		return nil, apperr.Invalid("Period record does not belong to this user")
	}
	rec.PeriodRecID = periodRecID
	if err := ValidatePeriodRecord(rec); err != nil {
		return nil, err
	}
	s.warnLongSpan(rec)
	if err := s.records.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.log.Info("period record updated", zap.Uint("period_rec_id", periodRecID))
	return rec, nil
}

// 超长经期只提示不拒绝
func (s *PeriodService) warnLongSpan(rec *domain.PeriodRecord) {
	if days, ok := periodSpanDays(rec); ok && days > 14 {
		s.log.Warn("period duration unusually long",
			zap.Int("days", days), zap.Uint("user_id", rec.UserID))
	}
}
