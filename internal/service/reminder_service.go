package service

import (
	"context"

	"go.uber.org/zap"

	"ovapal-api/internal/apperr"
	"ovapal-api/internal/domain"
)

type ReminderService struct {
	guard     UserGuard
	reminders domain.ReminderRepository
	log       *zap.Logger
}

func NewReminderService(guard UserGuard, reminders domain.ReminderRepository, log *zap.Logger) *ReminderService {
	return &ReminderService{guard: guard, reminders: reminders, log: log}
}

// List 只返回激活的提醒（isActive 为 true 或 null）
func (s *ReminderService) List(ctx context.Context, userID uint) ([]domain.Reminder, error) {
	if err := s.guard.EnsureExists(ctx, userID); err != nil {
		return nil, err
	}
	recs, err := s.reminders.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Reminder, 0, len(recs))
	for _, r := range recs {
		if r.Active() {
			active = append(active, r)
		}
	}
	s.log.Info("active reminders fetched", zap.Uint("user_id", userID), zap.Int("count", len(active)))
	return active, nil
}

func (s *ReminderService) Create(ctx context.Context, rec *domain.Reminder) (*domain.Reminder, error) {
	if err := s.guard.EnsureExists(ctx, rec.UserID); err != nil {
		return nil, err
	}
	if err := ValidateReminder(rec, domain.Today()); err != nil {
		return nil, err
	}
	if rec.IsActive == nil {
		active := true
		rec.IsActive = &active
	}
	if err := s.reminders.Create(ctx, rec); err != nil {
		return nil, err
	}
	s.log.Info("reminder saved", zap.Uint("reminder_id", rec.ReminderID), zap.Uint("user_id", rec.UserID))
	return rec, nil
}

func (s *ReminderService) Update(ctx context.Context, reminderID uint, rec *domain.Reminder) (*domain.Reminder, error) {
	if err := s.guard.EnsureExists(ctx, rec.UserID); err != nil {
		return nil, err
	}
	existing, err := s.reminders.FindByID(ctx, reminderID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFoundf("Reminder not found with ID: %d", reminderID)
	}
	if existing.UserID != rec.UserID {
		s.log.Warn("user mismatch on reminder", zap.Uint("reminder_id", reminderID))
		return nil, apperr.Invalid("Reminder does not belong to this user")
	}
	rec.ReminderID = reminderID
	if err := ValidateReminder(rec, domain.Today()); err != nil {
		return nil, err
	}
	if rec.IsActive == nil {
		active := true
		rec.IsActive = &active
	}
	if err := s.reminders.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.log.Info("reminder updated", zap.Uint("reminder_id", reminderID))
	return rec, nil
}

// Delete 软删：只翻 isActive，不动行
func (s *ReminderService) Delete(ctx context.Context, reminderID uint) error {
	existing, err := s.reminders.FindByID(ctx, reminderID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFoundf("Reminder not found with ID: %d", reminderID)
	}
	inactive := false
	existing.IsActive = &inactive
	if err := s.reminders.Save(ctx, existing); err != nil {
		return err
	}
	s.log.Info("reminder deactivated", zap.Uint("reminder_id", reminderID))
	return nil
}
