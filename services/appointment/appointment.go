package appointment

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	appointmentRepo "docbook/database/repository/appointment"
	"docbook/models"

	"go.uber.org/zap"
)

// List returns user's appointments ordered by visit time. An empty status lists all.
func (s *DefaultAppointmentService) List(ctx context.Context, user *models.User, status models.AppointmentStatus) ([]models.Appointment, error) {
	all, err := s.Repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	out := make([]models.Appointment, 0, len(all))
	for _, a := range all {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return visitTime(out[i]).Before(visitTime(out[j]))
	})
	return out, nil
}

func (s *DefaultAppointmentService) Get(ctx context.Context, user *models.User, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	if appt.UserID != user.ID {
		return nil, ErrAppointmentNotFound
	}
	return appt, nil
}

// Cancel marks an upcoming appointment cancelled.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, user *models.User, id string) (*models.Appointment, error) {
	appt, err := s.Get(ctx, user, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentStatusUpcoming {
		return nil, &StatusError{ID: id, Status: appt.Status}
	}
	if err := s.Repo.UpdateStatus(ctx, id, models.AppointmentStatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel appointment %s: %w", id, err)
	}
	appt.Status = models.AppointmentStatusCancelled
	s.Logger.Info("appointment cancelled", zap.String("appointmentID", id), zap.String("userID", user.ID))
	return appt, nil
}

// Record stores an appointment produced by a completed booking flow.
// Recording the same appointment ID again replaces the earlier record.
func (s *DefaultAppointmentService) Record(ctx context.Context, appt models.Appointment) error {
	if err := s.Repo.Create(ctx, appt); err != nil {
		return fmt.Errorf("failed to record appointment: %w", err)
	}
	s.Logger.Info("appointment recorded",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
	)
	return nil
}

// Stats returns a copy of user with the profile counters filled in.
func (s *DefaultAppointmentService) Stats(ctx context.Context, user *models.User) (*models.User, error) {
	all, err := s.Repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	out := *user
	out.TotalAppointments = len(all)
	out.UpcomingAppointments = 0
	doctors := make(map[string]struct{})
	for _, a := range all {
		doctors[a.DoctorID] = struct{}{}
		if a.Status == models.AppointmentStatusUpcoming {
			out.UpcomingAppointments++
		}
	}
	out.TotalDoctors = len(doctors)
	return &out, nil
}

// visitTime orders by visit start; unparseable visits sort first.
func visitTime(a models.Appointment) time.Time {
	t, err := a.VisitTime(time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}
