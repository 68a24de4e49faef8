package models

import "time"

// PatientInfo is entered during the second booking step.
type PatientInfo struct {
	Name   string `bson:"name" json:"name"`
	Phone  string `bson:"phone" json:"phone"`
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
	Notes  string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// BookingDraft is everything a booking flow has collected so far.
type BookingDraft struct {
	DoctorID string      `json:"doctorId"`
	Date     string      `json:"date,omitempty"` // YYYY-MM-DD
	Time     string      `json:"time,omitempty"`
	Patient  PatientInfo `json:"patient"`
}

// BookingStep is one entry of the wizard's progress indicator.
type BookingStep struct {
	Step      int    `json:"step"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// BookingSummary is what the confirmation step shows.
type BookingSummary struct {
	Doctor        string  `json:"doctor"`
	Specialty     string  `json:"specialty"`
	Location      string  `json:"location"`
	Date          string  `json:"date"`
	FormattedDate string  `json:"formattedDate"`
	Time          string  `json:"time"`
	Patient       string  `json:"patient"`
	Phone         string  `json:"phone"`
	Total         float64 `json:"total"`
}

// BookingSession holds one user's in-progress booking flow between requests.
type BookingSession struct {
	SessionID string       `json:"sessionId"`
	UserID    string       `json:"userId"`
	Step      int          `json:"step"`
	Doctor    Doctor       `json:"doctor"`
	Draft     BookingDraft `json:"draft"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// BookingSessionView is the response returned for every booking step call.
type BookingSessionView struct {
	SessionID string          `json:"sessionId"`
	Step      int             `json:"step"`
	Steps     []BookingStep   `json:"steps"`
	Doctor    Doctor          `json:"doctor"`
	Draft     BookingDraft    `json:"draft"`
	MinDate   string          `json:"minDate"`
	MaxDate   string          `json:"maxDate"`
	Slots     []TimeSlot      `json:"slots,omitempty"`
	Summary   *BookingSummary `json:"summary,omitempty"`
}
