package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"docbook/models"
	"docbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func TestHandleReminderTask(t *testing.T) {
	handler := HandleReminderTask(zap.NewNop())

	payload, _ := json.Marshal(models.ReminderPayload{AppointmentID: "appt-1", UserID: "user-1", Title: "Upcoming appointment"})
	if err := handler.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeAppointmentReminder, payload)); err != nil {
		t.Errorf("valid reminder: %v", err)
	}

	err := handler.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeAppointmentReminder, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("bad payload should skip retries, got %v", err)
	}
}
