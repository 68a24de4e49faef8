package appointment

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "docbook/database/repository/appointment"
	"docbook/models"

	"go.uber.org/zap"
)

// ErrAppointmentNotFound covers both missing appointments and ones owned by another user.
var ErrAppointmentNotFound = errors.New("appointment not found")

// StatusError rejects a status change that the current status does not allow.
type StatusError struct {
	ID     string
	Status models.AppointmentStatus
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("appointment %s is %s and cannot be cancelled", e.ID, e.Status)
}

// AppointmentService manages a user's booked visits.
type AppointmentService interface {
	List(ctx context.Context, user *models.User, status models.AppointmentStatus) ([]models.Appointment, error)
	Get(ctx context.Context, user *models.User, id string) (*models.Appointment, error)
	Cancel(ctx context.Context, user *models.User, id string) (*models.Appointment, error)
	Record(ctx context.Context, appt models.Appointment) error
	Stats(ctx context.Context, user *models.User) (*models.User, error)
}

type DefaultAppointmentService struct {
	Repo   appointmentRepo.AppointmentRepository
	Logger *zap.Logger
}
