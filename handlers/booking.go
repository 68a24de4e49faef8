package handlers

import (
	"net/http"

	"docbook/middleware"
	"docbook/models"
	"docbook/services/booking"
	"docbook/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	BookingSvc booking.BookingSessionService
}

func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{BookingSvc: svc}
}

// requireUser returns the signed-in user or writes a 401.
func requireUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
	}
	return user, ok
}

func respondView(c *gin.Context, status int, view *models.BookingSessionView, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, view)
}

// StartSession opens a booking flow for a doctor (step 1, Date & Time).
func (h *BookingHandler) StartSession(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var input models.StartBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	view, err := h.BookingSvc.Start(c.Request.Context(), user, input.DoctorID)
	respondView(c, http.StatusCreated, view, err)
}

func (h *BookingHandler) GetSession(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	view, err := h.BookingSvc.Get(c.Request.Context(), user, c.Param("sessionID"))
	respondView(c, http.StatusOK, view, err)
}

func (h *BookingHandler) SelectDate(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var input models.SelectDateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, "date is required", []string{booking.FieldDate})
		return
	}
	view, err := h.BookingSvc.SelectDate(c.Request.Context(), user, c.Param("sessionID"), input.Date)
	respondView(c, http.StatusOK, view, err)
}

func (h *BookingHandler) SelectTime(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var input models.SelectTimeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, "time is required", []string{booking.FieldTime})
		return
	}
	view, err := h.BookingSvc.SelectTime(c.Request.Context(), user, c.Param("sessionID"), input.Time)
	respondView(c, http.StatusOK, view, err)
}

func (h *BookingHandler) UpdatePatientInfo(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var input models.PatientInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	info := models.PatientInfo{Name: input.Name, Phone: input.Phone, Reason: input.Reason, Notes: input.Notes}
	view, err := h.BookingSvc.UpdatePatientInfo(c.Request.Context(), user, c.Param("sessionID"), info)
	respondView(c, http.StatusOK, view, err)
}

// Next advances the flow; a 400 lists the fields still missing.
func (h *BookingHandler) Next(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	view, err := h.BookingSvc.Advance(c.Request.Context(), user, c.Param("sessionID"))
	respondView(c, http.StatusOK, view, err)
}

func (h *BookingHandler) Back(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	view, err := h.BookingSvc.Retreat(c.Request.Context(), user, c.Param("sessionID"))
	respondView(c, http.StatusOK, view, err)
}

// Submit confirms the booking from the confirmation step.
func (h *BookingHandler) Submit(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	appt, err := h.BookingSvc.Submit(c.Request.Context(), user, c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Booking Confirmed!",
		"appointment": appt,
	})
}

func (h *BookingHandler) CancelSession(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.BookingSvc.Cancel(c.Request.Context(), user, c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
