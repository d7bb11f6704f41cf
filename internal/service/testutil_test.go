package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ovapal-api/internal/core/database"
	"ovapal-api/internal/domain"
	"ovapal-api/internal/repo"
)

// newTestDB 内存库；连接数压到 1，避免 :memory: 按连接各开一库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.HealthRecord{},
		&domain.PeriodRecord{},
		&domain.Reminder{},
		&domain.Medication{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestGuard(db *gorm.DB) UserGuard {
	return NewUserGuard(repo.NewUserRepo(db), nil, 0)
}

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	svc := NewUserService(repo.NewUserRepo(db), zap.NewNop())
	u, err := svc.CreateUser(context.Background(), CreateUserInput{
		Name:     "Test User",
		Email:    email,
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}
