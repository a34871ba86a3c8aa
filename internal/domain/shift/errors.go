package shift

import (
	"errors"
	"fmt"
	"strings"
)

// Shift domain errors
var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrInvalidShiftType = errors.New("invalid shift type")
	ErrInvalidStrategy  = errors.New("invalid assignment strategy")
	ErrInvalidStatus    = errors.New("invalid shift status")
)

// ConflictError reports that one or more candidate shift windows overlap
// existing shifts for the same user. Dates lists every conflicting
// calendar date ("2006-01-02") so the caller can reschedule.
type ConflictError struct {
	UserID string
	Dates  []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("shift conflict on %s", strings.Join(e.Dates, ", "))
}

// IsConflict reports whether err is a shift ConflictError and returns it.
func IsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
