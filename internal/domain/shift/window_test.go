package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, shiftType ShiftType, date string) (time.Time, time.Time) {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	start, end, err := WindowForType(shiftType, day, time.UTC)
	require.NoError(t, err)
	return start, end
}

func TestWindowForType_Morning(t *testing.T) {
	start, end := mustWindow(t, ShiftTypeMorning, "2024-03-04")

	assert.Equal(t, time.Date(2024, 3, 4, 6, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 4, 14, 0, 0, 0, time.UTC), end)
}

func TestWindowForType_Evening(t *testing.T) {
	start, end := mustWindow(t, ShiftTypeEvening, "2024-03-04")

	assert.Equal(t, time.Date(2024, 3, 4, 14, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC), end)
}

func TestWindowForType_NightCrossesMidnight(t *testing.T) {
	start, end := mustWindow(t, ShiftTypeNight, "2024-03-04")

	assert.Equal(t, time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 5, 6, 0, 0, 0, time.UTC), end)
}

func TestWindowForType_IgnoresTimeOfDay(t *testing.T) {
	noon := time.Date(2024, 3, 4, 12, 37, 45, 12345, time.UTC)
	start, end, err := WindowForType(ShiftTypeMorning, noon, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 4, 6, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 4, 14, 0, 0, 0, time.UTC), end)
}

func TestWindowForType_InvalidType(t *testing.T) {
	_, _, err := WindowForType(ShiftType("split"), time.Now(), time.UTC)
	assert.ErrorIs(t, err, ErrInvalidShiftType)
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{"identical windows", at(6), at(14), at(6), at(14), true},
		{"partial overlap", at(6), at(14), at(12), at(20), true},
		{"contained window", at(6), at(22), at(10), at(12), true},
		{"disjoint windows", at(6), at(14), at(15), at(20), false},
		{"touching endpoints", at(6), at(14), at(14), at(22), false},
		{"touching endpoints reversed", at(14), at(22), at(6), at(14), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// overlap is symmetric
			assert.Equal(t, tt.expected, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestOverlaps_NightThenNextMorning(t *testing.T) {
	// Night ends 06:00 next day exactly when the next morning starts.
	nightStart, nightEnd := mustWindow(t, ShiftTypeNight, "2024-03-04")
	morningStart, morningEnd := mustWindow(t, ShiftTypeMorning, "2024-03-05")

	assert.False(t, Overlaps(nightStart, nightEnd, morningStart, morningEnd))
}

func TestHasConflict(t *testing.T) {
	eveningStart, eveningEnd := mustWindow(t, ShiftTypeEvening, "2024-03-04")
	existing := []Shift{
		{ID: "shift-1", StartTime: eveningStart, EndTime: eveningEnd},
	}

	morningStart, morningEnd := mustWindow(t, ShiftTypeMorning, "2024-03-04")
	assert.False(t, HasConflict(morningStart, morningEnd, existing, ""))

	nightStart, nightEnd := mustWindow(t, ShiftTypeNight, "2024-03-04")
	assert.False(t, HasConflict(nightStart, nightEnd, existing, ""))

	assert.True(t, HasConflict(eveningStart, eveningEnd, existing, ""))
}

func TestHasConflict_ExcludesOwnID(t *testing.T) {
	start, end := mustWindow(t, ShiftTypeMorning, "2024-03-04")
	existing := []Shift{
		{ID: "shift-1", StartTime: start, EndTime: end},
	}

	// Re-checking an edit against its own stored row must not conflict.
	assert.False(t, HasConflict(start, end, existing, "shift-1"))
	assert.True(t, HasConflict(start, end, existing, "shift-2"))
}

func TestConflictingWith(t *testing.T) {
	morningStart, morningEnd := mustWindow(t, ShiftTypeMorning, "2024-03-04")
	eveningStart, eveningEnd := mustWindow(t, ShiftTypeEvening, "2024-03-04")
	existing := []Shift{
		{ID: "shift-1", StartTime: morningStart, EndTime: morningEnd},
		{ID: "shift-2", StartTime: eveningStart, EndTime: eveningEnd},
	}

	candidateStart := time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)
	candidateEnd := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)

	conflicts := ConflictingWith(candidateStart, candidateEnd, existing, "")
	require.Len(t, conflicts, 2)

	conflicts = ConflictingWith(candidateStart, candidateEnd, existing, "shift-1")
	require.Len(t, conflicts, 1)
	assert.Equal(t, "shift-2", conflicts[0].ID)
}

func TestConflictError(t *testing.T) {
	err := &ConflictError{UserID: "user-1", Dates: []string{"2024-03-04", "2024-03-06"}}
	assert.Equal(t, "shift conflict on 2024-03-04, 2024-03-06", err.Error())

	ce, ok := IsConflict(err)
	require.True(t, ok)
	assert.Equal(t, []string{"2024-03-04", "2024-03-06"}, ce.Dates)

	_, ok = IsConflict(ErrShiftNotFound)
	assert.False(t, ok)
}
