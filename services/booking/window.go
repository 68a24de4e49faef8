package booking

import "time"

// DateLayout is the wire format of booking dates.
const DateLayout = "2006-01-02"

// DateWindow is the inclusive range of selectable dates.
type DateWindow struct {
	Min time.Time
	Max time.Time
}

// NewDateWindow returns [today, today + months] in now's location.
// AddDate normalises overflow: Nov 30 + 3 months is Mar 2 (Mar 1 in leap years).
func NewDateWindow(now time.Time, months int) DateWindow {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return DateWindow{
		Min: today,
		Max: today.AddDate(0, months, 0),
	}
}

// Contains reports whether the calendar day d falls in the window.
func (w DateWindow) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, w.Min.Location())
	return !day.Before(w.Min) && !day.After(w.Max)
}

func (w DateWindow) MinString() string { return w.Min.Format(DateLayout) }
func (w DateWindow) MaxString() string { return w.Max.Format(DateLayout) }

// ParseDate parses a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// FormatLongDate renders a YYYY-MM-DD date as "Thursday, January 25, 2024".
// Unparseable input is returned as is.
func FormatLongDate(s string) string {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return d.Format("Monday, January 2, 2006")
}
