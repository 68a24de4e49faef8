package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"docbook/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentReminder = "appointment:reminder"

// NewReminderTask builds the reminder for appt, due lead before the visit.
// Visits whose reminder time has passed are due immediately.
func NewReminderTask(appt models.Appointment, visit time.Time, lead time.Duration, now time.Time) (*asynq.Task, []asynq.Option, error) {
	fireAt := visit.Add(-lead)
	if fireAt.Before(now) {
		fireAt = now
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		Title:         "Upcoming appointment",
		Body:          fmt.Sprintf("Your appointment with %s is on %s at %s.", appt.DoctorName, appt.Date, appt.Time),
		FireDate:      fireAt.Format(time.RFC3339),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}

	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:" + appt.ID),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client the reminder hook needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReminderScheduler turns completed bookings into reminder tasks.
type ReminderScheduler struct {
	Client   Enqueuer
	Lead     time.Duration
	Location *time.Location
	Logger   *zap.Logger
	Now      func() time.Time
}

// OnBooked schedules a reminder for appt. Enqueue failures are logged, not
// returned, so a queue outage never blocks a booking.
func (r *ReminderScheduler) OnBooked(ctx context.Context, appt models.Appointment) error {
	visit, err := appt.VisitTime(r.Location)
	if err != nil {
		r.Logger.Warn("reminder skipped: unparseable visit time", zap.String("appointmentID", appt.ID), zap.Error(err))
		return nil
	}

	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}
	task, opts, err := NewReminderTask(appt, visit, r.Lead, now)
	if err != nil {
		r.Logger.Error("reminder skipped: payload", zap.String("appointmentID", appt.ID), zap.Error(err))
		return nil
	}
	info, err := r.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		r.Logger.Error("failed to enqueue reminder", zap.String("appointmentID", appt.ID), zap.Error(err))
		return nil
	}
	r.Logger.Info("reminder scheduled",
		zap.String("appointmentID", appt.ID),
		zap.String("taskID", info.ID),
		zap.Time("processAt", info.NextProcessAt),
	)
	return nil
}
