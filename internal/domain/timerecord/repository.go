package timerecord

import (
	"context"
	"time"
)

// TimeRecordRepository defines data access methods for attendance sessions.
type TimeRecordRepository interface {
	// Create inserts a new record; the store rejects a second open
	// record for the same user (partial unique index on user_id
	// where logout_at is null).
	Create(ctx context.Context, record TimeRecord) (TimeRecord, error)

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (TimeRecord, error)

	// GetOpenByUser retrieves the user's open session, if any.
	// Returns pgx.ErrNoRows via wrapping when none exists.
	GetOpenByUser(ctx context.Context, userID string) (TimeRecord, error)

	// Update rewrites login/logout/duration on an existing record
	Update(ctx context.Context, record TimeRecord) error

	// Delete removes a record
	Delete(ctx context.Context, id string) error

	// List retrieves records with filters and pagination
	List(ctx context.Context, filter ListFilter) ([]TimeRecord, int64, error)

	// ListOpenOlderThan returns open sessions whose login_at is before cutoff.
	// Used by the stale-session sweep.
	ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]TimeRecord, error)
}

// TimeRecordService is the session lifecycle manager.
type TimeRecordService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (TimeRecordResponse, error)
	CheckOut(ctx context.Context) (TimeRecordResponse, error)
	GetOpenSession(ctx context.Context) (*TimeRecordResponse, error)
	AdminEdit(ctx context.Context, req AdminEditRequest) (TimeRecordResponse, error)
	Delete(ctx context.Context, recordID string) error
	ListMine(ctx context.Context, filter ListFilter) ([]TimeRecordResponse, int64, error)
	ListAll(ctx context.Context, filter ListFilter) ([]TimeRecordResponse, int64, error)
	CloseStaleSessions(ctx context.Context, maxOpen time.Duration) (int, error)
}
