package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	doctorRepo "docbook/database/repository/doctor"
	"docbook/database/seed"
)

func newTestDirectory() *DefaultDirectoryService {
	return &DefaultDirectoryService{
		Repo:          doctorRepo.NewMemoryDoctorRepo(seed.Doctors()),
		SpecialtyList: seed.Specialties,
		SlotGrid:      seed.TimeSlots(),
	}
}

func TestSearch(t *testing.T) {
	svc := newTestDirectory()

	cases := []struct {
		name  string
		query SearchQuery
		want  []string
	}{
		{"everything", SearchQuery{}, []string{"1", "2", "3", "4"}},
		{"all specialty", SearchQuery{Specialty: AllSpecialties}, []string{"1", "2", "3", "4"}},
		{"name is case insensitive", SearchQuery{Query: "sarah"}, []string{"1"}},
		{"matches specialty text", SearchQuery{Query: "cardio"}, []string{"2"}},
		{"matches location", SearchQuery{Query: "children"}, []string{"4"}},
		{"specialty filter", SearchQuery{Specialty: "Dermatology"}, []string{"3"}},
		{"query and specialty", SearchQuery{Query: "dr.", Specialty: "Pediatrics"}, []string{"4"}},
		{"no match", SearchQuery{Query: "neurosurgery"}, nil},
		{"specialty must match exactly", SearchQuery{Specialty: "cardiology"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Search(context.Background(), tc.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d doctors, want %d", len(got), len(tc.want))
			}
			for i, d := range got {
				if d.ID != tc.want[i] {
					t.Errorf("result %d = %s, want %s", i, d.ID, tc.want[i])
				}
			}
		})
	}
}

func TestGetDoctor(t *testing.T) {
	svc := newTestDirectory()

	d, err := svc.GetDoctor(context.Background(), "2")
	if err != nil {
		t.Fatalf("GetDoctor: %v", err)
	}
	if d.Name != "Dr. Michael Chen" {
		t.Errorf("name = %q", d.Name)
	}

	if _, err := svc.GetDoctor(context.Background(), "missing"); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestSpecialtiesAndSlotsAreCopies(t *testing.T) {
	svc := newTestDirectory()

	specs := svc.Specialties()
	if specs[0] != AllSpecialties {
		t.Errorf("first specialty = %q", specs[0])
	}
	specs[0] = "changed"
	if svc.Specialties()[0] != AllSpecialties {
		t.Error("Specialties exposed its backing slice")
	}

	slots := svc.TimeSlots(time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC))
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(slots))
	}
	slots[0].Available = false
	if !svc.TimeSlots(time.Now())[0].Available {
		t.Error("TimeSlots exposed its backing slice")
	}
}
