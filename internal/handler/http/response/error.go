package response

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/auth"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timerecord"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Shift conflicts carry every conflicting date so the client can
	// offer the full set to reschedule, not just the first clash.
	if conflictErr, ok := shift.IsConflict(err); ok {
		details := map[string]string{
			"dates": strings.Join(conflictErr.Dates, ", "),
			"count": strconv.Itoa(len(conflictErr.Dates)),
		}
		ConflictWithDetails(w, "Shift assignment conflicts with existing schedule", details)
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrOAuthDisabled):
		BadRequest(w, "Google login is not configured", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Time record domain errors
	case errors.Is(err, timerecord.ErrSessionAlreadyOpen):
		Conflict(w, "An open session already exists")
	case errors.Is(err, timerecord.ErrNoOpenSession):
		NotFound(w, "No open session found")
	case errors.Is(err, timerecord.ErrLogoutBeforeLogin):
		BadRequest(w, "Logout time precedes login time", nil)
	case errors.Is(err, timerecord.ErrTimeRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timerecord.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this time record")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrInvalidShiftType):
		BadRequest(w, "Invalid shift type", nil)
	case errors.Is(err, shift.ErrInvalidStrategy):
		BadRequest(w, "Invalid assignment strategy", nil)
	case errors.Is(err, shift.ErrInvalidStatus):
		BadRequest(w, "Invalid shift status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date precedes start date", nil)

	// Report domain errors
	case errors.Is(err, report.ErrUserIDRequired):
		BadRequest(w, "user_id is required", nil)
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "Invalid report date range", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
