package models

// Input payloads for the booking endpoints.

type StartBookingInput struct {
	DoctorID string `json:"doctorId" binding:"required"`
}

type SelectDateInput struct {
	Date string `json:"date" binding:"required"`
}

type SelectTimeInput struct {
	Time string `json:"time" binding:"required"`
}

type PatientInfoInput struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}
