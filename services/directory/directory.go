package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	doctorRepo "docbook/database/repository/doctor"
	"docbook/models"
)

func (s *DefaultDirectoryService) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	doctor, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, doctorRepo.ErrNotFound) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor %s: %w", id, err)
	}
	return doctor, nil
}

// Search matches the query case-insensitively against name, specialty and
// location, and the specialty exactly unless it is empty or "All".
func (s *DefaultDirectoryService) Search(ctx context.Context, q SearchQuery) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(q.Query))
	out := make([]models.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if matchesQuery(d, needle) && matchesSpecialty(d, q.Specialty) {
			out = append(out, d)
		}
	}
	return out, nil
}

func matchesQuery(d models.Doctor, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), needle) ||
		strings.Contains(strings.ToLower(d.Specialty), needle) ||
		strings.Contains(strings.ToLower(d.Location), needle)
}

func matchesSpecialty(d models.Doctor, specialty string) bool {
	return specialty == "" || specialty == AllSpecialties || d.Specialty == specialty
}

func (s *DefaultDirectoryService) Specialties() []string {
	return append([]string(nil), s.SpecialtyList...)
}

// TimeSlots returns the slot grid for date. The grid does not vary by date yet.
func (s *DefaultDirectoryService) TimeSlots(date time.Time) []models.TimeSlot {
	return append([]models.TimeSlot(nil), s.SlotGrid...)
}
