package handlers

import (
	"errors"
	"net/http"

	"docbook/services/appointment"
	"docbook/services/auth"
	"docbook/services/booking"
	"docbook/services/directory"
	"docbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *booking.ValidationError
		rangeErr      *booking.DateOutOfRangeError
		slotErr       *booking.UnknownSlotError
		stepErr       *booking.StepError
		statusErr     *appointment.StatusError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONFieldError(c, http.StatusBadRequest, validationErr.Error(), validationErr.Fields())
	case errors.As(err, &rangeErr):
		utils.JSONFieldError(c, http.StatusBadRequest, rangeErr.Error(), []string{booking.FieldDate})
	case errors.As(err, &slotErr):
		utils.JSONFieldError(c, http.StatusBadRequest, slotErr.Error(), []string{booking.FieldTime})
	case errors.As(err, &stepErr):
		utils.JSONError(c, http.StatusConflict, stepErr.Error(), "")
	case errors.As(err, &statusErr):
		utils.JSONError(c, http.StatusConflict, statusErr.Error(), "")
	case errors.Is(err, directory.ErrDoctorNotFound),
		errors.Is(err, booking.ErrSessionNotFound),
		errors.Is(err, appointment.ErrAppointmentNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenRevoked):
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
	case errors.Is(err, auth.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		utils.ContextLogger(c).Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
