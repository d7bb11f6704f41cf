package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ovapal-api/internal/domain"
	"ovapal-api/internal/service"
)

type ReminderHandler struct {
	svc *service.ReminderService
	log *zap.Logger
}

func NewReminderHandler(svc *service.ReminderService, log *zap.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, log: log}
}

type reminderReq struct {
	UserID          uint              `json:"userId"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	ReminderDate    *domain.Date      `json:"reminderDate"`
	ReminderTime    *domain.TimeOfDay `json:"reminderTime"`
	IsRepeating     *bool             `json:"isRepeating"`
	RepeatFrequency string            `json:"repeatFrequency"`
	IsActive        *bool             `json:"isActive"`
}

func (r reminderReq) toDomain() *domain.Reminder {
	return &domain.Reminder{
		UserID:          r.UserID,
		Title:           r.Title,
		Description:     r.Description,
		ReminderDate:    r.ReminderDate,
		ReminderTime:    r.ReminderTime,
		IsRepeating:     r.IsRepeating,
		RepeatFrequency: r.RepeatFrequency,
		IsActive:        r.IsActive,
	}
}

func (h *ReminderHandler) Create(c *gin.Context) {
	var req reminderReq
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

func (h *ReminderHandler) List(c *gin.Context) {
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

func (h *ReminderHandler) Update(c *gin.Context) {
	reminderID, ok := idParam(c, "reminderId")
	if !ok {
		return
	}
	var req reminderReq
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), reminderID, req.toDomain())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ReminderHandler) Delete(c *gin.Context) {
	reminderID, ok := idParam(c, "reminderId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), reminderID); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
