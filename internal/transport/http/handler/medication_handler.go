package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ovapal-api/internal/domain"
	"ovapal-api/internal/service"
)

type MedicationHandler struct {
	svc *service.MedicationService
	log *zap.Logger
}

func NewMedicationHandler(svc *service.MedicationService, log *zap.Logger) *MedicationHandler {
	return &MedicationHandler{svc: svc, log: log}
}

type medicationReq struct {
	UserID    uint         `json:"userId"`
	Medicine  string       `json:"medicine"`
	Dosage    string       `json:"dosage"`
	Frequency string       `json:"frequency"`
	StartDate *domain.Date `json:"startDate"`
	EndDate   *domain.Date `json:"endDate"`
	Notes     string       `json:"notes"`
}

func (r medicationReq) toDomain() *domain.Medication {
	return &domain.Medication{
		UserID:    r.UserID,
		Medicine:  r.Medicine,
		Dosage:    r.Dosage,
		Frequency: r.Frequency,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Notes:     r.Notes,
	}
}

func (h *MedicationHandler) Create(c *gin.Context) {
	var req medicationReq
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

func (h *MedicationHandler) List(c *gin.Context) {
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

func (h *MedicationHandler) Update(c *gin.Context) {
	medicationID, ok := idParam(c, "medicationId")
	if !ok {
		return
	}
	var req medicationReq
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), medicationID, req.toDomain())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *MedicationHandler) Delete(c *gin.Context) {
	medicationID, ok := idParam(c, "medicationId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), medicationID); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medication deleted successfully"})
}
