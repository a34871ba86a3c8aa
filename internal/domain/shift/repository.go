package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for assigned shifts.
type ShiftRepository interface {
	// Create inserts a single shift
	Create(ctx context.Context, shift Shift) (Shift, error)

	// CreateBatch inserts all shifts in one statement; callers wrap it
	// in a transaction so a weekly batch commits all-or-nothing
	CreateBatch(ctx context.Context, shifts []Shift) ([]Shift, error)

	// GetByID retrieves a shift by ID
	GetByID(ctx context.Context, id string) (Shift, error)

	// ListByUserForUpdate returns every shift of the user intersecting
	// [from, to), locking the rows. Must run inside a transaction; the
	// lock serializes concurrent check-then-persist sequences for the
	// same user.
	ListByUserForUpdate(ctx context.Context, userID string, from, to time.Time) ([]Shift, error)

	// Update rewrites type, window, notes and status in place
	Update(ctx context.Context, shift Shift) error

	// Delete removes a shift
	Delete(ctx context.Context, id string) error

	// List retrieves shifts with filters and pagination
	List(ctx context.Context, filter ListFilter) ([]Shift, int64, error)
}

// ShiftService orchestrates single and weekly shift assignment with
// all-or-nothing conflict semantics.
type ShiftService interface {
	AssignShift(ctx context.Context, req AssignShiftRequest) ([]ShiftResponse, error)
	EditShift(ctx context.Context, req EditShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, shiftID string) error
	List(ctx context.Context, filter ListFilter) ([]ShiftResponse, int64, error)
	ListMine(ctx context.Context, filter ListFilter) ([]ShiftResponse, int64, error)
}
