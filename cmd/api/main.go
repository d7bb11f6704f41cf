package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ovapal-api/internal/core/auth"
	"ovapal-api/internal/core/cache"
	"ovapal-api/internal/core/config"
	"ovapal-api/internal/core/database"
	"ovapal-api/internal/core/logger"
	"ovapal-api/internal/core/server"
	"ovapal-api/internal/domain"
	"ovapal-api/internal/repo"
	"ovapal-api/internal/service"
	"ovapal-api/internal/transport/http/handler"
	"ovapal-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	log, cleanup := buildLogger(cfg)
	defer cleanup()

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.HealthRecord{},
			&domain.PeriodRecord{},
			&domain.Reminder{},
			&domain.Medication{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// Redis 缓存可选，未配置时直接落库
	var userCache *cache.Cache
	if cfg.Redis.Addr != "" {
		userCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// 仓储 → 服务 → 处理器
	users := repo.NewUserRepo(db)
	guard := service.NewUserGuard(users, userCache, time.Duration(cfg.Redis.UserCacheTTLSec)*time.Second)

	userSvc := service.NewUserService(users, log)
	healthSvc := service.NewHealthService(guard, repo.NewHealthRecordRepo(db), log)
	periodSvc := service.NewPeriodService(guard, repo.NewPeriodRecordRepo(db), log)
	reminderSvc := service.NewReminderService(guard, repo.NewReminderRepo(db), log)
	medicationSvc := service.NewMedicationService(guard, repo.NewMedicationRepo(db), log)

	h := router.Handlers{
		User:       handler.NewUserHandler(userSvc, jwter, log),
		Health:     handler.NewHealthHandler(healthSvc, log),
		Period:     handler.NewPeriodHandler(periodSvc, log),
		Reminder:   handler.NewReminderHandler(reminderSvc, log),
		Medication: handler.NewMedicationHandler(medicationSvc, log),
	}
	r := router.NewAPIEngine(log, jwter, h)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("ovapal api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("healthz", baseURL+"/healthz"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("ovapal api start FAILED", zap.Error(err))
		}
	}()
	log.Info("ovapal api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("ovapal api stopped gracefully")
}

func buildLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File.Filename != "" {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
			Filename:   cfg.Log.File.Filename,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		})
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
