package appointmentRepo

import (
	"context"
	"sync"

	"docbook/models"
)

type memoryAppointmentRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Appointment
}

// NewMemoryAppointmentRepo returns an in-process AppointmentRepository holding seed.
func NewMemoryAppointmentRepo(seed []models.Appointment) AppointmentRepository {
	r := &memoryAppointmentRepo{byID: make(map[string]models.Appointment)}
	for _, a := range seed {
		r.order = append(r.order, a.ID)
		r.byID[a.ID] = a
	}
	return r
}

func (r *memoryAppointmentRepo) Create(_ context.Context, appt models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[appt.ID]; !exists {
		r.order = append(r.order, appt.ID)
	}
	r.byID[appt.ID] = appt
	return nil
}

func (r *memoryAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *memoryAppointmentRepo) ListByUser(_ context.Context, userID string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Appointment
	for _, id := range r.order {
		if a := r.byID[id]; a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryAppointmentRepo) UpdateStatus(_ context.Context, id string, status models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	r.byID[id] = a
	return nil
}
