package service

import (
	"regexp"

	"ovapal-api/internal/apperr"
	"ovapal-api/internal/domain"
)

// 校验全部为纯函数，持久化之前执行；字段检查顺序固定，
// 多项违规时报错信息取首个命中的规则
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

const minPasswordLength = 8

func ValidateHealthRecord(rec *domain.HealthRecord) error {
	if rec.Weight != nil && *rec.Weight <= 0 {
		return apperr.Invalid("Weight must be a positive value")
	}
	if rec.Height != nil && *rec.Height <= 0 {
		return apperr.Invalid("Height must be a positive value")
	}
	if rec.HeartRate != nil && (*rec.HeartRate < 20 || *rec.HeartRate > 220) {
		return apperr.Invalid("Heart rate must be between 20 and 220 bpm")
	}
	if rec.BloodPressureSystolic != nil && rec.BloodPressureDiastolic != nil {
		if *rec.BloodPressureSystolic <= *rec.BloodPressureDiastolic {
			return apperr.Invalid("Systolic pressure must be greater than diastolic pressure")
		}
	}
	return nil
}

func ValidatePeriodRecord(rec *domain.PeriodRecord) error {
	if rec.StartDate == nil {
		return apperr.Invalid("Start date is required")
	}
	if rec.EndDate != nil && rec.EndDate.Before(rec.StartDate.Time) {
		return apperr.Invalid("End date cannot be before start date")
	}
	return nil
}

// periodSpanDays 起止俱全时返回跨度天数；超过 14 天只作警示，不算违规
func periodSpanDays(rec *domain.PeriodRecord) (int, bool) {
	if rec.StartDate == nil || rec.EndDate == nil {
		return 0, false
	}
	return rec.StartDate.DaysUntil(*rec.EndDate), true
}

func ValidateReminder(rec *domain.Reminder, today domain.Date) error {
	if isBlank(rec.Title) {
		return apperr.Invalid("Reminder title is required")
	}
	if rec.ReminderDate == nil {
		return apperr.Invalid("Reminder date is required")
	}
	if rec.ReminderTime == nil {
		return apperr.Invalid("Reminder time is required")
	}
	if rec.ReminderDate.Before(today.Time) {
		return apperr.Invalid("Cannot set reminder for a past date")
	}
	return nil
}

func ValidateMedication(rec *domain.Medication) error {
	if isBlank(rec.Medicine) {
		return apperr.Invalid("Medication name is required")
	}
	if isBlank(rec.Dosage) {
		return apperr.Invalid("Dosage is required")
	}
	if isBlank(rec.Frequency) {
		return apperr.Invalid("Frequency is required")
	}
	if rec.StartDate == nil {
		return apperr.Invalid("Start date is required")
	}
	if rec.EndDate != nil && rec.EndDate.Before(rec.StartDate.Time) {
		return apperr.Invalid("End date cannot be before start date")
	}
	return nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
