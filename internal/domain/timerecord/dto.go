package timerecord

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

// ========================================
// TIME RECORD DTOs
// ========================================

type CheckInRequest struct {
	UserAgent string `json:"-"`
}

type AdminEditRequest struct {
	RecordID string  `json:"-"`
	LoginAt  *string `json:"login_at"`  // RFC3339; nil keeps current value
	LogoutAt *string `json:"logout_at"` // RFC3339; nil keeps current value
	Reopen   bool    `json:"reopen"`    // clears logout_at, reopening the session
}

func (r *AdminEditRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}

	if r.LoginAt == nil && r.LogoutAt == nil && !r.Reopen {
		errs = append(errs, validator.ValidationError{
			Field:   "login_at",
			Message: "at least one of login_at, logout_at or reopen must be provided",
		})
	}

	if r.LoginAt != nil {
		if _, ok := validator.IsValidDateTime(*r.LoginAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "login_at",
				Message: "login_at must be a valid RFC3339 timestamp",
			})
		}
	}

	if r.LogoutAt != nil {
		if r.Reopen {
			errs = append(errs, validator.ValidationError{
				Field:   "logout_at",
				Message: "logout_at cannot be combined with reopen",
			})
		}
		if _, ok := validator.IsValidDateTime(*r.LogoutAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "logout_at",
				Message: "logout_at must be a valid RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

type TimeRecordResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	UserName        *string `json:"user_name,omitempty"`
	LoginAt         string  `json:"login_at"`
	LogoutAt        *string `json:"logout_at"`
	DurationMinutes *int    `json:"duration_minutes"`
	UserAgent       string  `json:"user_agent,omitempty"`
}

// NewTimeRecordResponse converts an entity into its wire representation.
func NewTimeRecordResponse(r TimeRecord) TimeRecordResponse {
	resp := TimeRecordResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		UserName:        r.UserName,
		LoginAt:         r.LoginAt.UTC().Format(time.RFC3339),
		DurationMinutes: r.DurationMinutes,
		UserAgent:       r.UserAgent,
	}
	if r.LogoutAt != nil {
		out := r.LogoutAt.UTC().Format(time.RFC3339)
		resp.LogoutAt = &out
	}
	return resp
}
