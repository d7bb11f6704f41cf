package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ovapal-api/internal/domain"
	"ovapal-api/internal/service"
)

type HealthHandler struct {
	svc *service.HealthService
	log *zap.Logger
}

func NewHealthHandler(svc *service.HealthService, log *zap.Logger) *HealthHandler {
	return &HealthHandler{svc: svc, log: log}
}

type healthRecordReq struct {
	UserID                 uint             `json:"userId"`
	RecordDate             *domain.Date     `json:"recordDate"`
	Weight                 *float64         `json:"weight"`
	Height                 *float64         `json:"height"`
	Temperature            *float64         `json:"temperature"`
	HeartRate              *int             `json:"heartRate"`
	BloodPressureSystolic  *int             `json:"bloodPressureSystolic"`
	BloodPressureDiastolic *int             `json:"bloodPressureDiastolic"`
	Notes                  string           `json:"notes"`
}

func (r healthRecordReq) toDomain() *domain.HealthRecord {
	return &domain.HealthRecord{
		UserID:                 r.UserID,
		RecordDate:             r.RecordDate,
		Weight:                 r.Weight,
		Height:                 r.Height,
		Temperature:            r.Temperature,
		HeartRate:              r.HeartRate,
		BloodPressureSystolic:  r.BloodPressureSystolic,
		BloodPressureDiastolic: r.BloodPressureDiastolic,
		Notes:                  r.Notes,
	}
}

func (h *HealthHandler) Create(c *gin.Context) {
	var req healthRecordReq
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *HealthHandler) List(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}
	recs, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *HealthHandler) Update(c *gin.Context) {
	healthID, ok := idParam(c, "healthId")
	if !ok {
		return
	}
	var req healthRecordReq
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), healthID, req.toDomain())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
