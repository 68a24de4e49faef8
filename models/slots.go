package models

// TimeSlot is a bookable time of day, e.g. {"10:30 AM", true}.
type TimeSlot struct {
	Time      string `bson:"time" json:"time"`
	Available bool   `bson:"available" json:"available"`
}

// DaySlots is the slot list served for one date.
type DaySlots struct {
	Date  string     `json:"date"`
	Slots []TimeSlot `json:"slots"`
}
