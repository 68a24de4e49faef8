package models

import "time"

type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "upcoming"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusUpcoming, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

type AppointmentType string

const (
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeFollowUp     AppointmentType = "follow-up"
	AppointmentTypeCheckUp      AppointmentType = "check-up"
)

// Appointment is a booked visit. Doctor fields are denormalised at booking time.
type Appointment struct {
	ID          string            `bson:"id" json:"id"`
	UserID      string            `bson:"userId" json:"userId,omitempty"`
	DoctorID    string            `bson:"doctorId" json:"doctorId"`
	DoctorName  string            `bson:"doctorName" json:"doctorName"`
	DoctorImage string            `bson:"doctorImage" json:"doctorImage"`
	Specialty   string            `bson:"specialty" json:"specialty"`
	Date        string            `bson:"date" json:"date"` // YYYY-MM-DD
	Time        string            `bson:"time" json:"time"` // e.g. "10:30 AM"
	Location    string            `bson:"location" json:"location"`
	Status      AppointmentStatus `bson:"status" json:"status"`
	Type        AppointmentType   `bson:"type" json:"type"`
	Patient     *PatientInfo      `bson:"patient,omitempty" json:"patient,omitempty"`
	Fee         float64           `bson:"fee,omitempty" json:"fee,omitempty"`
	CreatedAt   time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitzero"`
}

// VisitLayout joins an appointment's Date and Time into one parseable value.
const VisitLayout = "2006-01-02 3:04 PM"

// VisitTime is the start of the visit in loc (UTC when nil).
func (a Appointment) VisitTime(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(VisitLayout, a.Date+" "+a.Time, loc)
}
