package postgresql

import (
	"context"
	"fmt"
	"strings"

	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository.
// The shifts table carries an exclusion constraint no_overlapping_shifts
// on (user_id, tstzrange(start_time, end_time)), so an overlapping insert
// fails with SQL state 23P01 even if the service-level check was bypassed.
func (r *shiftRepository) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (user_id, shift_type, start_time, end_time, assigned_by, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newShift.UserID,
		newShift.ShiftType,
		newShift.StartTime,
		newShift.EndTime,
		newShift.AssignedBy,
		newShift.Notes,
		newShift.Status,
	).Scan(&newShift.ID, &newShift.CreatedAt, &newShift.UpdatedAt)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

// CreateBatch implements shift.ShiftRepository.
func (r *shiftRepository) CreateBatch(ctx context.Context, shifts []shift.Shift) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	created := make([]shift.Shift, 0, len(shifts))
	for _, s := range shifts {
		query := `
			INSERT INTO shifts (user_id, shift_type, start_time, end_time, assigned_by, notes, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at
		`
		err := q.QueryRow(ctx, query,
			s.UserID, s.ShiftType, s.StartTime, s.EndTime, s.AssignedBy, s.Notes, s.Status,
		).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to create shift batch: %w", err)
		}
		created = append(created, s)
	}

	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.user_id, s.shift_type, s.start_time, s.end_time, s.assigned_by,
			   s.notes, s.status, s.created_at, s.updated_at, u.full_name AS user_name
		FROM shifts s
		LEFT JOIN users u ON u.id = s.user_id
		WHERE s.id = $1
	`

	var sh shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&sh.ID, &sh.UserID, &sh.ShiftType, &sh.StartTime, &sh.EndTime, &sh.AssignedBy,
		&sh.Notes, &sh.Status, &sh.CreatedAt, &sh.UpdatedAt, &sh.UserName,
	)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}

	return sh, nil
}

// ListByUserForUpdate implements shift.ShiftRepository.
// FOR UPDATE locks the returned rows for the duration of the enclosing
// transaction, serializing concurrent check-then-persist sequences for
// the same user.
func (r *shiftRepository) ListByUserForUpdate(ctx context.Context, userID string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, shift_type, start_time, end_time, assigned_by,
			   notes, status, created_at, updated_at
		FROM shifts
		WHERE user_id = $1
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time
		FOR UPDATE
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to lock shifts for user: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		if err := rows.Scan(
			&sh.ID, &sh.UserID, &sh.ShiftType, &sh.StartTime, &sh.EndTime, &sh.AssignedBy,
			&sh.Notes, &sh.Status, &sh.CreatedAt, &sh.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}

	return shifts, rows.Err()
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, sh shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET shift_type = $1, start_time = $2, end_time = $3, notes = $4, status = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query, sh.ShiftType, sh.StartTime, sh.EndTime, sh.Notes, sh.Status, sh.ID)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context, filter shift.ListFilter) ([]shift.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("s.user_id = $%d", argPos))
		args = append(args, filter.UserID)
		argPos++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("s.end_time > $%d", argPos))
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("s.start_time < $%d", argPos))
		args = append(args, *filter.To)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM shifts s WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT s.id, s.user_id, s.shift_type, s.start_time, s.end_time, s.assigned_by,
			   s.notes, s.status, s.created_at, s.updated_at, u.full_name AS user_name
		FROM shifts s
		LEFT JOIN users u ON u.id = s.user_id
		WHERE %s
		ORDER BY s.start_time
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		if err := rows.Scan(
			&sh.ID, &sh.UserID, &sh.ShiftType, &sh.StartTime, &sh.EndTime, &sh.AssignedBy,
			&sh.Notes, &sh.Status, &sh.CreatedAt, &sh.UpdatedAt, &sh.UserName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}

	return shifts, total, rows.Err()
}
