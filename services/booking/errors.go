package booking

import (
	"errors"
	"fmt"
	"strings"
)

// Field names reported by ValidationError.
const (
	FieldDate  = "date"
	FieldTime  = "time"
	FieldName  = "name"
	FieldPhone = "phone"
)

var (
	ErrSessionNotFound = errors.New("booking session not found or expired")
)

// ValidationError blocks a step transition because required fields are
// missing or malformed. The flow is left unchanged.
type ValidationError struct {
	MissingFields []string
	InvalidFields []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingFields) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.MissingFields, ", "))
	}
	if len(e.InvalidFields) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.InvalidFields, ", "))
	}
	return strings.Join(parts, "; ")
}

// Fields lists every offending field, missing first.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.MissingFields)+len(e.InvalidFields))
	out = append(out, e.MissingFields...)
	return append(out, e.InvalidFields...)
}

// DateOutOfRangeError rejects a date outside the bookable window.
type DateOutOfRangeError struct {
	Date string
	Min  string
	Max  string
}

func (e *DateOutOfRangeError) Error() string {
	return fmt.Sprintf("date %s is outside the bookable window %s to %s", e.Date, e.Min, e.Max)
}

// StepError is returned when an operation is not offered by the current step,
// e.g. advancing past confirmation or submitting before it.
type StepError struct {
	Op   string
	Step Step
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s is not allowed at step %d (%s)", e.Op, e.Step, e.Step)
}

// UnknownSlotError is returned when a time label is not in the day's slot list.
type UnknownSlotError struct {
	Time string
}

func (e *UnknownSlotError) Error() string {
	return fmt.Sprintf("no time slot %q on the selected date", e.Time)
}
