package shift

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type AssignShiftRequest struct {
	UserID    string  `json:"user_id"`
	ShiftType string  `json:"shift_type"`
	Strategy  string  `json:"strategy"`
	Date      *string `json:"date"`       // userDefined: "2006-01-02"
	StartDate *string `json:"start_date"` // autoWeekly: week anchor "2006-01-02"
	Notes     *string `json:"notes"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsInSlice(r.ShiftType, ShiftTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be one of: morning, evening, night",
		})
	}

	switch Strategy(r.Strategy) {
	case StrategyUserDefined:
		if r.Date == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date is required for userDefined strategy",
			})
		} else if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "invalid date format, use YYYY-MM-DD",
			})
		}
	case StrategyAutoWeekly:
		if r.StartDate == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date is required for autoWeekly strategy",
			})
		} else if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "invalid date format, use YYYY-MM-DD",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "strategy",
			Message: "strategy must be one of: userDefined, autoWeekly",
		})
	}

	if r.Notes != nil && len(*r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EditShiftRequest struct {
	ShiftID   string  `json:"-"`
	ShiftType string  `json:"shift_type"`
	Date      string  `json:"date"`
	Notes     *string `json:"notes"`
	Status    *string `json:"status"`
}

func (r *EditShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if !validator.IsInSlice(r.ShiftType, ShiftTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be one of: morning, evening, night",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "invalid date format, use YYYY-MM-DD",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: assigned, confirmed, completed, cancelled",
		})
	}

	if r.Notes != nil && len(*r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
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

type ShiftResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	UserName  *string `json:"user_name,omitempty"`
	ShiftType string  `json:"shift_type"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
}

// NewShiftResponse converts an entity into its wire representation.
func NewShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		UserName:  s.UserName,
		ShiftType: string(s.ShiftType),
		StartTime: s.StartTime.UTC().Format(time.RFC3339),
		EndTime:   s.EndTime.UTC().Format(time.RFC3339),
		Status:    string(s.Status),
		Notes:     s.Notes,
	}
}
