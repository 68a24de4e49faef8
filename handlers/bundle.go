// File: handlers/bundle.go
package handlers

import (
	"docbook/services/auth"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AuthSvc auth.AuthService

	// Auth and profile endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc
	MeHandler       gin.HandlerFunc

	// Directory endpoints
	ListDoctorsHandler gin.HandlerFunc
	GetDoctorHandler   gin.HandlerFunc
	SpecialtiesHandler gin.HandlerFunc
	TimeSlotsHandler   gin.HandlerFunc

	// Appointment endpoints
	ListAppointmentsHandler  gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc

	// Booking endpoints
	StartSession      gin.HandlerFunc
	GetSession        gin.HandlerFunc
	SelectDate        gin.HandlerFunc
	SelectTime        gin.HandlerFunc
	UpdatePatientInfo gin.HandlerFunc
	NextStep          gin.HandlerFunc
	PreviousStep      gin.HandlerFunc
	SubmitBooking     gin.HandlerFunc
	CancelSession     gin.HandlerFunc

	// Health endpoint
	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(authSvc auth.AuthService, ah *AuthHandler, dh *DirectoryHandler, aph *AppointmentHandler, bh *BookingHandler, health gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		AuthSvc: authSvc,

		RegisterHandler: ah.RegisterHandler,
		LoginHandler:    ah.LoginHandler,
		LogoutHandler:   ah.LogoutHandler,
		MeHandler:       ah.MeHandler,

		ListDoctorsHandler: dh.ListDoctorsHandler,
		GetDoctorHandler:   dh.GetDoctorHandler,
		SpecialtiesHandler: dh.SpecialtiesHandler,
		TimeSlotsHandler:   dh.TimeSlotsHandler,

		ListAppointmentsHandler:  aph.ListAppointmentsHandler,
		GetAppointmentHandler:    aph.GetAppointmentHandler,
		CancelAppointmentHandler: aph.CancelAppointmentHandler,

		StartSession:      bh.StartSession,
		GetSession:        bh.GetSession,
		SelectDate:        bh.SelectDate,
		SelectTime:        bh.SelectTime,
		UpdatePatientInfo: bh.UpdatePatientInfo,
		NextStep:          bh.Next,
		PreviousStep:      bh.Back,
		SubmitBooking:     bh.Submit,
		CancelSession:     bh.CancelSession,

		HealthHandler: health,
	}
}
