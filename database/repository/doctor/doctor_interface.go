package doctorRepo

import (
	"context"
	"errors"

	"docbook/models"
)

// ErrNotFound is returned when no doctor has the requested ID.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	// GetAll retrieves all doctors in catalogue order.
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// Upsert inserts or replaces a doctor record.
	Upsert(ctx context.Context, doctor models.Doctor) error
}
