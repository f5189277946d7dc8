/*
Package tracking implements the daily consumption checklist and weight
log. Days are bucketed by calendar date in the configured timezone.
*/
package tracking

import "time"

// DayKey returns the YYYY-MM-DD calendar key for a moment in the given
// location. A nil location means UTC.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02")
}

// StartOfDay returns midnight of the calendar day containing t in the
// given location.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
