package doctorRepo

import (
	"context"
	"sync"

	"docbook/models"
)

// MemoryDoctorRepo keeps doctors in insertion order.
type MemoryDoctorRepo struct {
	mu      sync.RWMutex
	order   []string
	doctors map[string]models.Doctor
}

func NewMemoryDoctorRepo(doctors []models.Doctor) *MemoryDoctorRepo {
	r := &MemoryDoctorRepo{doctors: make(map[string]models.Doctor)}
	for _, d := range doctors {
		_ = r.Upsert(context.Background(), d)
	}
	return r
}

func (r *MemoryDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r *MemoryDoctorRepo) GetAll(_ context.Context) ([]models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Doctor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.doctors[id])
	}
	return out, nil
}

func (r *MemoryDoctorRepo) Upsert(_ context.Context, doctor models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.doctors[doctor.ID]; !exists {
		r.order = append(r.order, doctor.ID)
	}
	r.doctors[doctor.ID] = doctor
	return nil
}
