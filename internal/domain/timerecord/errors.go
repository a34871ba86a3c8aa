package timerecord

import "errors"

// Time record domain errors
var (
	// Check-in / check-out errors
	ErrSessionAlreadyOpen = errors.New("an open session already exists for this user")
	ErrNoOpenSession      = errors.New("no open session found for this user")
	ErrLogoutBeforeLogin  = errors.New("logout time precedes login time")

	// General errors
	ErrTimeRecordNotFound = errors.New("time record not found")
	ErrUnauthorized       = errors.New("unauthorized to access this time record")
)
