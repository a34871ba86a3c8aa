package timerecord

import "time"

// TimeRecord is one login-to-logout attendance session for a user.
// A record with LogoutAt == nil is the user's open session; the store
// guarantees at most one open record per user.
type TimeRecord struct {
	ID              string
	UserID          string
	LoginAt         time.Time
	LogoutAt        *time.Time
	DurationMinutes *int
	UserAgent       string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	UserName *string
}

// IsOpen reports whether the session is still in progress.
func (r *TimeRecord) IsOpen() bool {
	return r.LogoutAt == nil
}

// DurationBetween computes the session length in whole minutes,
// rounding to the nearest minute.
func DurationBetween(loginAt, logoutAt time.Time) int {
	return int(logoutAt.Sub(loginAt).Round(time.Minute) / time.Minute)
}
