// File: services/booking/service.go
package booking

import (
	"context"
	"fmt"
	"time"

	"docbook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingSessionService) now() time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	if s.Now != nil {
		return s.Now().In(loc)
	}
	return time.Now().In(loc)
}

func (s *DefaultBookingSessionService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.New().String()
}

func (s *DefaultBookingSessionService) window() DateWindow {
	months := s.WindowMonths
	if months <= 0 {
		months = 3
	}
	return NewDateWindow(s.now(), months)
}

// Start opens a flow for doctorID. An unknown doctor surfaces the directory's not-found error.
func (s *DefaultBookingSessionService) Start(ctx context.Context, user *models.User, doctorID string) (*models.BookingSessionView, error) {
	doctor, err := s.Directory.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := NewFlow(*doctor).Session(s.newID(), user.ID, now, now)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("booking session started",
		zap.String("sessionID", session.SessionID),
		zap.String("userID", user.ID),
		zap.String("doctorID", doctor.ID),
	)
	return s.view(session), nil
}

func (s *DefaultBookingSessionService) Get(ctx context.Context, user *models.User, sessionID string) (*models.BookingSessionView, error) {
	session, err := s.load(ctx, user, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(*session), nil
}

func (s *DefaultBookingSessionService) SelectDate(ctx context.Context, user *models.User, sessionID, date string) (*models.BookingSessionView, error) {
	w := s.window()
	return s.apply(ctx, user, sessionID, func(f Flow) (Flow, error) {
		return f.SelectDate(date, w)
	})
}

// SelectTime picks slotTime from the selected day's grid. Unavailable slots leave the flow as it was.
func (s *DefaultBookingSessionService) SelectTime(ctx context.Context, user *models.User, sessionID, slotTime string) (*models.BookingSessionView, error) {
	return s.apply(ctx, user, sessionID, func(f Flow) (Flow, error) {
		for _, slot := range s.Directory.TimeSlots(s.slotDate(f)) {
			if slot.Time == slotTime {
				return f.SelectTime(slot), nil
			}
		}
		return f, &UnknownSlotError{Time: slotTime}
	})
}

func (s *DefaultBookingSessionService) UpdatePatientInfo(ctx context.Context, user *models.User, sessionID string, info models.PatientInfo) (*models.BookingSessionView, error) {
	return s.apply(ctx, user, sessionID, func(f Flow) (Flow, error) {
		return f.UpdatePatientInfo(info), nil
	})
}

func (s *DefaultBookingSessionService) Advance(ctx context.Context, user *models.User, sessionID string) (*models.BookingSessionView, error) {
	return s.apply(ctx, user, sessionID, Flow.Advance)
}

func (s *DefaultBookingSessionService) Retreat(ctx context.Context, user *models.User, sessionID string) (*models.BookingSessionView, error) {
	return s.apply(ctx, user, sessionID, func(f Flow) (Flow, error) {
		return f.Retreat(), nil
	})
}

// Submit finalises a confirmed flow and hands the appointment to every
// completion hook. The session is claimed before the hooks run, so concurrent
// submits of one flow produce a single appointment. The appointment takes the
// session ID; when a hook fails the session is put back and a retry yields the
// same appointment ID.
func (s *DefaultBookingSessionService) Submit(ctx context.Context, user *models.User, sessionID string) (*models.Appointment, error) {
	session, err := s.load(ctx, user, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := ResumeFlow(*session).Submit(session.SessionID, s.now()); err != nil {
		return nil, err
	}

	claimed, err := s.Store.Take(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	appt, err := ResumeFlow(*claimed).Submit(claimed.SessionID, s.now())
	if err != nil {
		s.restore(ctx, *claimed)
		return nil, err
	}
	appt.UserID = user.ID

	for _, hook := range s.OnComplete {
		if err := hook(ctx, appt); err != nil {
			s.restore(ctx, *claimed)
			return nil, fmt.Errorf("failed to complete booking: %w", err)
		}
	}

	s.Logger.Info("booking submitted",
		zap.String("sessionID", sessionID),
		zap.String("appointmentID", appt.ID),
		zap.String("userID", user.ID),
	)
	return &appt, nil
}

// restore puts a claimed session back after a failed submit.
func (s *DefaultBookingSessionService) restore(ctx context.Context, session models.BookingSession) {
	session.UpdatedAt = s.now()
	if err := s.Store.Save(ctx, session); err != nil {
		s.Logger.Error("failed to restore booking session", zap.String("sessionID", session.SessionID), zap.Error(err))
	}
}

// Cancel abandons the flow. Nothing outside the session store was written.
func (s *DefaultBookingSessionService) Cancel(ctx context.Context, user *models.User, sessionID string) error {
	if _, err := s.load(ctx, user, sessionID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, sessionID)
}

// load fetches a session owned by user; other users' sessions look missing.
func (s *DefaultBookingSessionService) load(ctx context.Context, user *models.User, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != user.ID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// apply runs one transition and saves the result. A failed transition saves nothing.
func (s *DefaultBookingSessionService) apply(ctx context.Context, user *models.User, sessionID string, transition func(Flow) (Flow, error)) (*models.BookingSessionView, error) {
	session, err := s.load(ctx, user, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := transition(ResumeFlow(*session))
	if err != nil {
		return nil, err
	}

	updated := next.Session(session.SessionID, session.UserID, session.CreatedAt, s.now())
	if err := s.Store.Save(ctx, updated); err != nil {
		return nil, err
	}
	return s.view(updated), nil
}

func (s *DefaultBookingSessionService) slotDate(f Flow) time.Time {
	w := s.window()
	if d, err := ParseDate(f.Draft().Date, w.Min.Location()); err == nil {
		return d
	}
	return w.Min
}

func (s *DefaultBookingSessionService) view(session models.BookingSession) *models.BookingSessionView {
	f := ResumeFlow(session)
	w := s.window()
	v := &models.BookingSessionView{
		SessionID: session.SessionID,
		Step:      int(f.Step()),
		Steps:     f.Steps(),
		Doctor:    f.Doctor(),
		Draft:     f.Draft(),
		MinDate:   w.MinString(),
		MaxDate:   w.MaxString(),
	}
	if f.Step() == StepDateTime && f.Draft().Date != "" {
		v.Slots = s.Directory.TimeSlots(s.slotDate(f))
	}
	if f.Step() == StepConfirmation {
		summary := f.Summary()
		v.Summary = &summary
	}
	return v
}
