package booking

import (
	"context"
	"time"

	"docbook/models"
	"docbook/services/directory"

	"go.uber.org/zap"
)

// CompletionHook receives every appointment produced by a submitted flow.
// Hooks run in order; the first error aborts the submission and keeps the session.
type CompletionHook func(ctx context.Context, appt models.Appointment) error

// BookingSessionService drives stored booking flows, one per session ID.
type BookingSessionService interface {
	Start(ctx context.Context, user *models.User, doctorID string) (*models.BookingSessionView, error)
	Get(ctx context.Context, user *models.User, sessionID string) (*models.BookingSessionView, error)
	SelectDate(ctx context.Context, user *models.User, sessionID, date string) (*models.BookingSessionView, error)
	SelectTime(ctx context.Context, user *models.User, sessionID, slotTime string) (*models.BookingSessionView, error)
	UpdatePatientInfo(ctx context.Context, user *models.User, sessionID string, info models.PatientInfo) (*models.BookingSessionView, error)
	Advance(ctx context.Context, user *models.User, sessionID string) (*models.BookingSessionView, error)
	Retreat(ctx context.Context, user *models.User, sessionID string) (*models.BookingSessionView, error)
	Submit(ctx context.Context, user *models.User, sessionID string) (*models.Appointment, error)
	Cancel(ctx context.Context, user *models.User, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Directory    directory.DirectoryService
	Store        SessionStore
	OnComplete   []CompletionHook
	WindowMonths int
	Location     *time.Location
	Logger       *zap.Logger

	// Now and NewID are replaced in tests.
	Now   func() time.Time
	NewID func() string
}
