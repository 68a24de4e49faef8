package directory

import (
	"context"
	"errors"
	"time"

	doctorRepo "docbook/database/repository/doctor"
	"docbook/models"
)

// ErrDoctorNotFound is returned by GetDoctor for unknown IDs.
var ErrDoctorNotFound = errors.New("doctor not found")

// AllSpecialties disables the specialty filter.
const AllSpecialties = "All"

// SearchQuery filters the directory. Empty fields match everything.
type SearchQuery struct {
	Query     string
	Specialty string
}

// DirectoryService is the read side of the doctor catalogue.
type DirectoryService interface {
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
	Search(ctx context.Context, q SearchQuery) ([]models.Doctor, error)
	Specialties() []string
	TimeSlots(date time.Time) []models.TimeSlot
}

// DefaultDirectoryService implements DirectoryService over a DoctorRepository.
type DefaultDirectoryService struct {
	Repo          doctorRepo.DoctorRepository
	SpecialtyList []string
	SlotGrid      []models.TimeSlot
}
