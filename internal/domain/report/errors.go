package report

import "errors"

var (
	ErrUserIDRequired   = errors.New("user_id is required")
	ErrInvalidDateRange = errors.New("invalid report date range")
)
