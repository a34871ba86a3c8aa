package shift

import "time"

type Shift struct {
	ID         string
	UserID     string
	ShiftType  ShiftType
	StartTime  time.Time
	EndTime    time.Time
	AssignedBy string
	Notes      *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	UserName *string
}

type ShiftType string

const (
	ShiftTypeMorning ShiftType = "morning" // 06:00 - 14:00
	ShiftTypeEvening ShiftType = "evening" // 14:00 - 22:00
	ShiftTypeNight   ShiftType = "night"   // 22:00 - 06:00 next day
)

var ShiftTypeValues = []string{
	string(ShiftTypeMorning),
	string(ShiftTypeEvening),
	string(ShiftTypeNight),
}

type Status string

const (
	StatusAssigned  Status = "assigned"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var StatusValues = []string{
	string(StatusAssigned),
	string(StatusConfirmed),
	string(StatusCompleted),
	string(StatusCancelled),
}

type Strategy string

const (
	StrategyUserDefined Strategy = "userDefined" // one shift on the given date
	StrategyAutoWeekly  Strategy = "autoWeekly"  // seven consecutive daily shifts
)

var StrategyValues = []string{
	string(StrategyUserDefined),
	string(StrategyAutoWeekly),
}
