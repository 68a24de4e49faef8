package booking

import (
	"strings"
	"time"

	"docbook/models"
)

// Step is a stage of the booking wizard.
type Step int

const (
	StepDateTime Step = iota + 1
	StepPatientInfo
	StepConfirmation
)

var stepTitles = map[Step]string{
	StepDateTime:     "Date & Time",
	StepPatientInfo:  "Patient Info",
	StepConfirmation: "Confirmation",
}

func (s Step) String() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return "unknown"
}

func (s Step) valid() bool {
	return s >= StepDateTime && s <= StepConfirmation
}

// Flow is one booking wizard run for a single doctor. It is a value: every
// transition returns a new Flow and leaves the receiver untouched.
type Flow struct {
	step   Step
	doctor models.Doctor
	draft  models.BookingDraft
}

// NewFlow starts a wizard for doctor at the date & time step.
func NewFlow(doctor models.Doctor) Flow {
	return Flow{
		step:   StepDateTime,
		doctor: doctor,
		draft:  models.BookingDraft{DoctorID: doctor.ID},
	}
}

func (f Flow) Step() Step                 { return f.step }
func (f Flow) Doctor() models.Doctor      { return f.doctor }
func (f Flow) Draft() models.BookingDraft { return f.draft }

// SelectDate sets the visit date. Dates outside w are rejected and a
// previously chosen time is kept.
func (f Flow) SelectDate(date string, w DateWindow) (Flow, error) {
	d, err := ParseDate(date, w.Min.Location())
	if err != nil {
		return f, &ValidationError{InvalidFields: []string{FieldDate}}
	}
	if !w.Contains(d) {
		return f, &DateOutOfRangeError{Date: date, Min: w.MinString(), Max: w.MaxString()}
	}
	f.draft.Date = d.Format(DateLayout)
	return f, nil
}

// SelectTime sets the visit time. Unavailable slots are ignored.
func (f Flow) SelectTime(slot models.TimeSlot) Flow {
	if !slot.Available {
		return f
	}
	f.draft.Time = slot.Time
	return f
}

// UpdatePatientInfo replaces the patient details. Surrounding whitespace is trimmed.
func (f Flow) UpdatePatientInfo(info models.PatientInfo) Flow {
	f.draft.Patient = models.PatientInfo{
		Name:   strings.TrimSpace(info.Name),
		Phone:  strings.TrimSpace(info.Phone),
		Reason: strings.TrimSpace(info.Reason),
		Notes:  strings.TrimSpace(info.Notes),
	}
	return f
}

// Advance moves to the next step once the current step's fields are present.
// Confirmation has no next step; use Submit.
func (f Flow) Advance() (Flow, error) {
	switch f.step {
	case StepDateTime:
		if err := f.checkDateTime(); err != nil {
			return f, err
		}
	case StepPatientInfo:
		if err := f.checkPatient(); err != nil {
			return f, err
		}
	default:
		return f, &StepError{Op: "advance", Step: f.step}
	}
	f.step++
	return f, nil
}

// Retreat moves back one step. It never fails and keeps all entered data.
func (f Flow) Retreat() Flow {
	if f.step > StepDateTime {
		f.step--
	}
	return f
}

// Submit turns a confirmed draft into an upcoming consultation.
func (f Flow) Submit(id string, now time.Time) (models.Appointment, error) {
	if f.step != StepConfirmation {
		return models.Appointment{}, &StepError{Op: "submit", Step: f.step}
	}
	// Fields may have been edited after the checks that let the flow get here.
	if err := f.checkDateTime(); err != nil {
		return models.Appointment{}, err
	}
	if err := f.checkPatient(); err != nil {
		return models.Appointment{}, err
	}

	patient := f.draft.Patient
	return models.Appointment{
		ID:          id,
		DoctorID:    f.doctor.ID,
		DoctorName:  f.doctor.Name,
		DoctorImage: f.doctor.Image,
		Specialty:   f.doctor.Specialty,
		Date:        f.draft.Date,
		Time:        f.draft.Time,
		Location:    f.doctor.Location,
		Status:      models.AppointmentStatusUpcoming,
		Type:        models.AppointmentTypeConsultation,
		Patient:     &patient,
		Fee:         f.doctor.ConsultationFee,
		CreatedAt:   now,
	}, nil
}

// Steps is the progress indicator: a step is completed once the flow is past it.
func (f Flow) Steps() []models.BookingStep {
	steps := make([]models.BookingStep, 0, int(StepConfirmation))
	for s := StepDateTime; s <= StepConfirmation; s++ {
		steps = append(steps, models.BookingStep{
			Step:      int(s),
			Title:     s.String(),
			Completed: f.step > s,
		})
	}
	return steps
}

// Summary is the confirmation view of the draft.
func (f Flow) Summary() models.BookingSummary {
	return models.BookingSummary{
		Doctor:        f.doctor.Name,
		Specialty:     f.doctor.Specialty,
		Location:      f.doctor.Location,
		Date:          f.draft.Date,
		FormattedDate: FormatLongDate(f.draft.Date),
		Time:          f.draft.Time,
		Patient:       f.draft.Patient.Name,
		Phone:         f.draft.Patient.Phone,
		Total:         f.doctor.ConsultationFee,
	}
}

func (f Flow) checkDateTime() error {
	var missing []string
	if f.draft.Date == "" {
		missing = append(missing, FieldDate)
	}
	if f.draft.Time == "" {
		missing = append(missing, FieldTime)
	}
	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}
	return nil
}

func (f Flow) checkPatient() error {
	var missing []string
	if f.draft.Patient.Name == "" {
		missing = append(missing, FieldName)
	}
	if f.draft.Patient.Phone == "" {
		missing = append(missing, FieldPhone)
	}
	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}
	return nil
}

// Session captures the flow for storage between requests.
func (f Flow) Session(sessionID, userID string, createdAt, updatedAt time.Time) models.BookingSession {
	return models.BookingSession{
		SessionID: sessionID,
		UserID:    userID,
		Step:      int(f.step),
		Doctor:    f.doctor,
		Draft:     f.draft,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ResumeFlow rebuilds a flow from a stored session. An out-of-range step
// restarts at date & time.
func ResumeFlow(s models.BookingSession) Flow {
	step := Step(s.Step)
	if !step.valid() {
		step = StepDateTime
	}
	draft := s.Draft
	draft.DoctorID = s.Doctor.ID
	return Flow{step: step, doctor: s.Doctor, draft: draft}
}
