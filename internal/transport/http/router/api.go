package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ovapal-api/internal/core/auth"
	"ovapal-api/internal/transport/http/handler"
	mdw "ovapal-api/internal/transport/http/middleware"
)

// Handlers 路由挂载所需的全部处理器
type Handlers struct {
	User       *handler.UserHandler
	Health     *handler.HealthHandler
	Period     *handler.PeriodHandler
	Reminder   *handler.ReminderHandler
	Medication *handler.MedicationHandler
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "ts": time.Now().Unix()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 注册和登录不走令牌校验，登录单独限流防爆破
	r.POST("/users", h.User.Create)
	r.POST("/login", mdw.RateLimitPerIP(5, 10), h.User.Login)

	api := r.Group("", mdw.AuthJWT(jwter, l))
	{
		api.POST("/health", h.Health.Create)
		api.GET("/health/:userId", h.Health.List)
		api.PUT("/health/:healthId", h.Health.Update)

		api.POST("/period", h.Period.Create)
		api.GET("/period/:userId", h.Period.List)
		api.PUT("/period/:periodRecId", h.Period.Update)

		api.POST("/reminders", h.Reminder.Create)
		api.GET("/reminders/:userId", h.Reminder.List)
		api.PUT("/reminders/:reminderId", h.Reminder.Update)
		api.DELETE("/reminders/:reminderId", h.Reminder.Delete)

		api.POST("/medications", h.Medication.Create)
		api.GET("/medications/:userId", h.Medication.List)
		api.PUT("/medications/:medicationId", h.Medication.Update)
		api.DELETE("/medications/:medicationId", h.Medication.Delete)
	}

	return r
}
