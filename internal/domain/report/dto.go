package report

import "time"

// AttendanceSummary aggregates a user's sessions over a date range.
// OvertimeMinutes counts worked time outside the user's assigned shift
// windows in the same range.
type AttendanceSummary struct {
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name"`
	SessionCount    int    `json:"session_count"`
	WorkedMinutes   int    `json:"worked_minutes"`
	ScheduledShifts int    `json:"scheduled_shifts"`
	OvertimeMinutes int    `json:"overtime_minutes"`
	From            string `json:"from"`
	To              string `json:"to"`
}

type SummaryFilter struct {
	UserID string
	From   time.Time
	To     time.Time
}
