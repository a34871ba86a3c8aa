package shift

import "time"

// Canonical time-of-day templates per shift type. The night shift
// checks out at 06:00 on the following calendar day.
const (
	morningStartHour = 6
	morningEndHour   = 14
	eveningEndHour   = 22
	nightEndHour     = 6
)

// WindowForType maps a shift type and a calendar date to the concrete
// [start, end) instant pair for that day's shift. The date's year, month
// and day are taken in loc; hours, minutes and smaller units are ignored.
func WindowForType(shiftType ShiftType, date time.Time, loc *time.Location) (start, end time.Time, err error) {
	if loc == nil {
		loc = time.UTC
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	switch shiftType {
	case ShiftTypeMorning:
		return day.Add(morningStartHour * time.Hour), day.Add(morningEndHour * time.Hour), nil
	case ShiftTypeEvening:
		return day.Add(morningEndHour * time.Hour), day.Add(eveningEndHour * time.Hour), nil
	case ShiftTypeNight:
		// crosses midnight: ends at 06:00 the next day
		next := day.AddDate(0, 0, 1)
		return day.Add(eveningEndHour * time.Hour), next.Add(nightEndHour * time.Hour), nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidShiftType
	}
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// HasConflict reports whether the candidate [start, end) window overlaps
// any of the existing shifts, skipping the shift with excludeID (used
// when re-checking an edited shift against its siblings).
func HasConflict(candidateStart, candidateEnd time.Time, existing []Shift, excludeID string) bool {
	for _, s := range existing {
		if excludeID != "" && s.ID == excludeID {
			continue
		}
		if Overlaps(s.StartTime, s.EndTime, candidateStart, candidateEnd) {
			return true
		}
	}
	return false
}

// ConflictingWith returns the subset of existing shifts whose windows
// overlap the candidate window, skipping excludeID.
func ConflictingWith(candidateStart, candidateEnd time.Time, existing []Shift, excludeID string) []Shift {
	var conflicts []Shift
	for _, s := range existing {
		if excludeID != "" && s.ID == excludeID {
			continue
		}
		if Overlaps(s.StartTime, s.EndTime, candidateStart, candidateEnd) {
			conflicts = append(conflicts, s)
		}
	}
	return conflicts
}
