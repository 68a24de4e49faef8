package appointmentRepo

import (
	"context"
	"errors"

	"docbook/models"
)

// ErrNotFound is returned when no appointment has the requested ID.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create stores appt, replacing any appointment with the same ID.
	Create(ctx context.Context, appt models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
}
