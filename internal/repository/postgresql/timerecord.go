package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timerecord"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type timeRecordRepository struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

// Create implements timerecord.TimeRecordRepository.
// The time_records table carries a partial unique index on (user_id)
// WHERE logout_at IS NULL, so inserting a second open session for the
// same user fails with a unique violation (SQL state 23505).
func (r *timeRecordRepository) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_records (user_id, login_at, logout_at, duration_minutes, user_agent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.UserID,
		record.LoginAt,
		record.LogoutAt,
		record.DurationMinutes,
		record.UserAgent,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return record, nil
}

// GetByID implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) GetByID(ctx context.Context, id string) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.user_id, t.login_at, t.logout_at, t.duration_minutes, t.user_agent,
			   t.created_at, t.updated_at, u.full_name AS user_name
		FROM time_records t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE t.id = $1
	`

	var rec timerecord.TimeRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.LoginAt, &rec.LogoutAt, &rec.DurationMinutes, &rec.UserAgent,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.UserName,
	)

	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to get time record by ID: %w", err)
	}

	return rec, nil
}

// GetOpenByUser implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) GetOpenByUser(ctx context.Context, userID string) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, login_at, logout_at, duration_minutes, user_agent,
			   created_at, updated_at
		FROM time_records
		WHERE user_id = $1
		  AND logout_at IS NULL
		ORDER BY login_at DESC
		LIMIT 1
	`

	var rec timerecord.TimeRecord
	err := q.QueryRow(ctx, query, userID).Scan(
		&rec.ID, &rec.UserID, &rec.LoginAt, &rec.LogoutAt, &rec.DurationMinutes, &rec.UserAgent,
		&rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return rec, nil
}

// Update implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) Update(ctx context.Context, record timerecord.TimeRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_records
		SET login_at = $1, logout_at = $2, duration_minutes = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, record.LoginAt, record.LogoutAt, record.DurationMinutes, record.ID)
	if err != nil {
		return fmt.Errorf("failed to update time record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerecord.ErrTimeRecordNotFound
	}

	return nil
}

// Delete implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerecord.ErrTimeRecordNotFound
	}

	return nil
}

// List implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) List(ctx context.Context, filter timerecord.ListFilter) ([]timerecord.TimeRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("t.user_id = $%d", argPos))
		args = append(args, filter.UserID)
		argPos++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("t.login_at >= $%d", argPos))
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("t.login_at < $%d", argPos))
		args = append(args, *filter.To)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM time_records t WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time records: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT t.id, t.user_id, t.login_at, t.logout_at, t.duration_minutes, t.user_agent,
			   t.created_at, t.updated_at, u.full_name AS user_name
		FROM time_records t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE %s
		ORDER BY t.login_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		var rec timerecord.TimeRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.LoginAt, &rec.LogoutAt, &rec.DurationMinutes, &rec.UserAgent,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.UserName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

// ListOpenOlderThan implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, login_at, logout_at, duration_minutes, user_agent,
			   created_at, updated_at
		FROM time_records
		WHERE logout_at IS NULL
		  AND login_at < $1
		ORDER BY login_at
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale sessions: %w", err)
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		var rec timerecord.TimeRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.LoginAt, &rec.LogoutAt, &rec.DurationMinutes, &rec.UserAgent,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stale session: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
