package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"ovapal-api/internal/apperr"
	"ovapal-api/internal/domain"
	"ovapal-api/internal/repo"
)

func TestHealthCreateDefaultsRecordDate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	u := seedUser(t, db, "h1@example.com")
	svc := NewHealthService(newTestGuard(db), repo.NewHealthRecordRepo(db), zap.NewNop())
	ctx := context.Background()

	rec, err := svc.Create(ctx, &domain.HealthRecord{UserID: u.UserID, Weight: fptr(61.5)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.HealthID == 0 {
		t.Fatal("expected DB-assigned id")
	}
	if rec.RecordDate == nil || !rec.RecordDate.Equal(domain.Today().Time) {
		t.Fatalf("record date should default to today, got %v", rec.RecordDate)
	}
}

func TestHealthCreateUnknownUser(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewHealthService(newTestGuard(db), repo.NewHealthRecordRepo(db), zap.NewNop())

	_, err := svc.Create(context.Background(), &domain.HealthRecord{UserID: 42, Weight: fptr(61.5)})
	checkMsg(t, err, "User not found with ID: 42")
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.KindNotFound {
		t.Fatalf("expected not-found kind, got %v", err)
	}
}

func TestHealthList(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	u := seedUser(t, db, "h2@example.com")
	svc := NewHealthService(newTestGuard(db), repo.NewHealthRecordRepo(db), zap.NewNop())
	ctx := context.Background()

	recs, err := svc.List(ctx, u.UserID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if recs == nil || len(recs) != 0 {
		t.Fatalf("expected empty slice, got %v", recs)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, &domain.HealthRecord{UserID: u.UserID, HeartRate: iptr(60 + i)}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	recs, err = svc.List(ctx, u.UserID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records want 3", len(recs))
	}
}

func TestHealthUpdate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	owner := seedUser(t, db, "h3@example.com")
	other := seedUser(t, db, "h4@example.com")
	svc := NewHealthService(newTestGuard(db), repo.NewHealthRecordRepo(db), zap.NewNop())
	ctx := context.Background()

	rec, err := svc.Create(ctx, &domain.HealthRecord{UserID: owner.UserID, Weight: fptr(60)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 不存在的记录
	_, err = svc.Update(ctx, 999, &domain.HealthRecord{UserID: owner.UserID})
	checkMsg(t, err, "Health record not found with ID: 999")

	// 他人记录
	_, err = svc.Update(ctx, rec.HealthID, &domain.HealthRecord{UserID: other.UserID})
	checkMsg(t, err, "Health record does not belong to this user")
	ae, _ := apperr.As(err)
	if ae.Kind != apperr.KindInvalid {
		t.Fatalf("ownership violation should map to invalid, got %v", ae.Kind)
	}

	// 正常更新
	updated, err := svc.Update(ctx, rec.HealthID, &domain.HealthRecord{UserID: owner.UserID, Weight: fptr(59), Notes: "after run"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.HealthID != rec.HealthID {
		t.Fatalf("id changed: %d vs %d", updated.HealthID, rec.HealthID)
	}
	stored, err := repo.NewHealthRecordRepo(db).FindByID(ctx, rec.HealthID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Weight == nil || *stored.Weight != 59 || stored.Notes != "after run" {
		t.Fatalf("update not persisted: %+v", stored)
	}
}

func TestHealthUpdateValidates(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	u := seedUser(t, db, "h5@example.com")
	svc := NewHealthService(newTestGuard(db), repo.NewHealthRecordRepo(db), zap.NewNop())
	ctx := context.Background()

	rec, err := svc.Create(ctx, &domain.HealthRecord{UserID: u.UserID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = svc.Update(ctx, rec.HealthID, &domain.HealthRecord{UserID: u.UserID, HeartRate: iptr(300)})
	checkMsg(t, err, "Heart rate must be between 20 and 220 bpm")
}
