package user

import "time"

type User struct {
	ID              string
	Email           string
	FullName        string
	PasswordHash    *string
	IsAdmin         bool
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanManageSchedules checks if user can assign, edit and delete shifts
func (u *User) CanManageSchedules() bool {
	return u.IsAdmin
}

// CanEditTimeRecords checks if user can override attendance records
func (u *User) CanEditTimeRecords() bool {
	return u.IsAdmin
}
