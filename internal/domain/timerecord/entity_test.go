package timerecord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationBetween(t *testing.T) {
	login := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		logout   time.Time
		expected int
	}{
		{"full workday", login.Add(8*time.Hour + 30*time.Minute), 510},
		{"one minute", login.Add(time.Minute), 1},
		{"rounds down below half", login.Add(10*time.Minute + 29*time.Second), 10},
		{"rounds up at half", login.Add(10*time.Minute + 30*time.Second), 11},
		{"zero duration", login, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DurationBetween(login, tt.logout))
		})
	}
}

func TestTimeRecord_IsOpen(t *testing.T) {
	record := TimeRecord{LoginAt: time.Now()}
	assert.True(t, record.IsOpen())

	logout := time.Now()
	record.LogoutAt = &logout
	assert.False(t, record.IsOpen())
}
