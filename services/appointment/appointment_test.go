package appointment

import (
	"context"
	"errors"
	"testing"

	appointmentRepo "docbook/database/repository/appointment"
	"docbook/database/seed"
	"docbook/models"

	"go.uber.org/zap"
)

var demo = &models.User{ID: seed.DemoUserID, Name: "Jane Doe"}

func newTestService() *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:   appointmentRepo.NewMemoryAppointmentRepo(seed.Appointments()),
		Logger: zap.NewNop(),
	}
}

func TestListOrdersByVisitTime(t *testing.T) {
	svc := newTestService()

	all, err := svc.List(context.Background(), demo, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"3", "1", "2"}
	if len(all) != len(want) {
		t.Fatalf("got %d appointments", len(all))
	}
	for i, a := range all {
		if a.ID != want[i] {
			t.Errorf("position %d = %s, want %s", i, a.ID, want[i])
		}
	}

	upcoming, _ := svc.List(context.Background(), demo, models.AppointmentStatusUpcoming)
	if len(upcoming) != 2 {
		t.Errorf("expected 2 upcoming, got %d", len(upcoming))
	}

	none, _ := svc.List(context.Background(), &models.User{ID: "nobody"}, "")
	if len(none) != 0 {
		t.Errorf("stranger sees %d appointments", len(none))
	}
}

func TestGetHidesOtherUsersAppointments(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Get(context.Background(), demo, "1"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := svc.Get(context.Background(), &models.User{ID: "nobody"}, "1"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), demo, "42"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	appt, err := svc.Cancel(ctx, demo, "1")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if appt.Status != models.AppointmentStatusCancelled {
		t.Errorf("status = %s", appt.Status)
	}
	stored, _ := svc.Get(ctx, demo, "1")
	if stored.Status != models.AppointmentStatusCancelled {
		t.Errorf("stored status = %s", stored.Status)
	}

	var serr *StatusError
	if _, err := svc.Cancel(ctx, demo, "1"); !errors.As(err, &serr) {
		t.Errorf("cancelling twice: expected *StatusError, got %v", err)
	}
	if _, err := svc.Cancel(ctx, demo, "3"); !errors.As(err, &serr) || serr.Status != models.AppointmentStatusCompleted {
		t.Errorf("cancelling a completed visit: %v", err)
	}
}

func TestRecordAndStats(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	booked := models.Appointment{
		ID:       "new",
		UserID:   seed.DemoUserID,
		DoctorID: "4",
		Date:     "2024-02-01",
		Time:     "9:00 AM",
		Status:   models.AppointmentStatusUpcoming,
	}
	if err := svc.Record(ctx, booked); err != nil {
		t.Fatalf("Record: %v", err)
	}

	stats, err := svc.Stats(ctx, demo)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalAppointments != 4 || stats.UpcomingAppointments != 3 || stats.TotalDoctors != 4 {
		t.Errorf("stats = %d total, %d upcoming, %d doctors",
			stats.TotalAppointments, stats.UpcomingAppointments, stats.TotalDoctors)
	}
	if demo.TotalAppointments != 0 {
		t.Error("Stats modified its argument")
	}
}

func TestListOrdersSameDayByClockTime(t *testing.T) {
	svc := &DefaultAppointmentService{
		Repo: appointmentRepo.NewMemoryAppointmentRepo([]models.Appointment{
			{ID: "pm", UserID: "u", Date: "2024-02-01", Time: "2:00 PM"},
			{ID: "late-am", UserID: "u", Date: "2024-02-01", Time: "11:30 AM"},
			{ID: "early-am", UserID: "u", Date: "2024-02-01", Time: "9:00 AM"},
		}),
		Logger: zap.NewNop(),
	}

	got, err := svc.List(context.Background(), &models.User{ID: "u"}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"early-am", "late-am", "pm"}
	for i, a := range got {
		if a.ID != want[i] {
			t.Errorf("position %d = %s, want %s", i, a.ID, want[i])
		}
	}
}
