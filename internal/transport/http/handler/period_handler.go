package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ovapal-api/internal/domain"
	"ovapal-api/internal/service"
)

type PeriodHandler struct {
	svc *service.PeriodService
	log *zap.Logger
}

func NewPeriodHandler(svc *service.PeriodService, log *zap.Logger) *PeriodHandler {
	return &PeriodHandler{svc: svc, log: log}
}

type periodRecordReq struct {
	UserID    uint         `json:"userId"`
	StartDate *domain.Date `json:"startDate"`
	EndDate   *domain.Date `json:"endDate"`
	Flow      string       `json:"flow"`
	Symptoms  string       `json:"symptoms"`
	Mood      string       `json:"mood"`
	Notes     string       `json:"notes"`
}

func (r periodRecordReq) toDomain() *domain.PeriodRecord {
	return &domain.PeriodRecord{
		UserID:    r.UserID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Flow:      r.Flow,
		Symptoms:  r.Symptoms,
		Mood:      r.Mood,
		Notes:     r.Notes,
	}
}

func (h *PeriodHandler) Create(c *gin.Context) {
	var req periodRecordReq
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

func (h *PeriodHandler) List(c *gin.Context) {
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

func (h *PeriodHandler) Update(c *gin.Context) {
	periodRecID, ok := idParam(c, "periodRecId")
	if !ok {
		return
	}
	var req periodRecordReq
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), periodRecID, req.toDomain())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
