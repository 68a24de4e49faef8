package handlers

import (
	"net/http"

	"docbook/models"
	"docbook/services/appointment"
	"docbook/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	AppointmentSvc appointment.AppointmentService
}

func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{AppointmentSvc: svc}
}

// ListAppointmentsHandler serves GET /api/appointments?status=upcoming|completed|cancelled.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	status := models.AppointmentStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		utils.JSONFieldError(c, http.StatusBadRequest, "unknown appointment status", []string{"status"})
		return
	}
	appts, err := h.AppointmentSvc.List(c.Request.Context(), user, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(appts), "appointments": appts})
}

func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	appt, err := h.AppointmentSvc.Get(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	appt, err := h.AppointmentSvc.Cancel(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
