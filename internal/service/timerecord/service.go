package timerecord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timerecord"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type TimeRecordServiceImpl struct {
	db *database.DB
	timerecord.TimeRecordRepository
}

func NewTimeRecordService(db *database.DB, repo timerecord.TimeRecordRepository) timerecord.TimeRecordService {
	return &TimeRecordServiceImpl{
		db:                   db,
		TimeRecordRepository: repo,
	}
}

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// isUniqueViolation reports a unique-index violation (SQL state 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CheckIn implements timerecord.TimeRecordService.
// A user with an open session is rejected; the stale-session sweep, not
// check-in, is responsible for closing forgotten sessions.
func (s *TimeRecordServiceImpl) CheckIn(ctx context.Context, req timerecord.CheckInRequest) (timerecord.TimeRecordResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	nowUTC := time.Now().UTC()

	_, err = s.TimeRecordRepository.GetOpenByUser(ctx, userID)
	if err == nil {
		return timerecord.TimeRecordResponse{}, timerecord.ErrSessionAlreadyOpen
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to check for open session: %w", err)
	}

	created, err := s.TimeRecordRepository.Create(ctx, timerecord.TimeRecord{
		UserID:    userID,
		LoginAt:   nowUTC,
		UserAgent: req.UserAgent,
	})
	if err != nil {
		// Two concurrent check-ins race past the lookup above; the
		// partial unique index keeps the invariant and we map the
		// violation back to the domain error.
		if isUniqueViolation(err) {
			return timerecord.TimeRecordResponse{}, timerecord.ErrSessionAlreadyOpen
		}
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return timerecord.NewTimeRecordResponse(created), nil
}

// CheckOut implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) CheckOut(ctx context.Context) (timerecord.TimeRecordResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	nowUTC := time.Now().UTC()

	open, err := s.TimeRecordRepository.GetOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.TimeRecordResponse{}, timerecord.ErrNoOpenSession
		}
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	if nowUTC.Before(open.LoginAt) {
		return timerecord.TimeRecordResponse{}, timerecord.ErrLogoutBeforeLogin
	}

	duration := timerecord.DurationBetween(open.LoginAt, nowUTC)
	open.LogoutAt = &nowUTC
	open.DurationMinutes = &duration

	if err := s.TimeRecordRepository.Update(ctx, open); err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to close session: %w", err)
	}

	return timerecord.NewTimeRecordResponse(open), nil
}

// GetOpenSession implements timerecord.TimeRecordService.
// Returns nil when the user has no open session; polling clients use
// the response to render a live duration.
func (s *TimeRecordServiceImpl) GetOpenSession(ctx context.Context) (*timerecord.TimeRecordResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	open, err := s.TimeRecordRepository.GetOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	resp := timerecord.NewTimeRecordResponse(open)
	return &resp, nil
}

// AdminEdit implements timerecord.TimeRecordService.
// Administrative override: endpoints may be rewritten freely and a
// closed session may be reopened. There is deliberately no check
// against the user's other sessions beyond the store's own invariant.
func (s *TimeRecordServiceImpl) AdminEdit(ctx context.Context, req timerecord.AdminEditRequest) (timerecord.TimeRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	rec, err := s.TimeRecordRepository.GetByID(ctx, req.RecordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.TimeRecordResponse{}, timerecord.ErrTimeRecordNotFound
		}
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to get time record: %w", err)
	}

	if req.LoginAt != nil {
		t, err := time.Parse(time.RFC3339, *req.LoginAt)
		if err != nil {
			return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to parse login_at: %w", err)
		}
		rec.LoginAt = t.UTC()
	}
	if req.Reopen {
		rec.LogoutAt = nil
		rec.DurationMinutes = nil
	} else if req.LogoutAt != nil {
		t, err := time.Parse(time.RFC3339, *req.LogoutAt)
		if err != nil {
			return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to parse logout_at: %w", err)
		}
		utc := t.UTC()
		rec.LogoutAt = &utc
	}

	if rec.LogoutAt != nil {
		if rec.LogoutAt.Before(rec.LoginAt) {
			return timerecord.TimeRecordResponse{}, timerecord.ErrLogoutBeforeLogin
		}
		duration := timerecord.DurationBetween(rec.LoginAt, *rec.LogoutAt)
		rec.DurationMinutes = &duration
	}

	if err := s.TimeRecordRepository.Update(ctx, rec); err != nil {
		if isUniqueViolation(err) {
			return timerecord.TimeRecordResponse{}, timerecord.ErrSessionAlreadyOpen
		}
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to update time record: %w", err)
	}

	return timerecord.NewTimeRecordResponse(rec), nil
}

// Delete implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) Delete(ctx context.Context, recordID string) error {
	return s.TimeRecordRepository.Delete(ctx, recordID)
}

// ListMine implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) ListMine(ctx context.Context, filter timerecord.ListFilter) ([]timerecord.TimeRecordResponse, int64, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, 0, err
	}
	filter.UserID = userID
	return s.list(ctx, filter)
}

// ListAll implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) ListAll(ctx context.Context, filter timerecord.ListFilter) ([]timerecord.TimeRecordResponse, int64, error) {
	return s.list(ctx, filter)
}

func (s *TimeRecordServiceImpl) list(ctx context.Context, filter timerecord.ListFilter) ([]timerecord.TimeRecordResponse, int64, error) {
	records, total, err := s.TimeRecordRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time records: %w", err)
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, timerecord.NewTimeRecordResponse(rec))
	}
	return responses, total, nil
}

// CloseStaleSessions implements timerecord.TimeRecordService.
// Sessions open longer than maxOpen are force-closed at loginAt+maxOpen,
// so a forgotten check-out does not inflate worked time indefinitely.
func (s *TimeRecordServiceImpl) CloseStaleSessions(ctx context.Context, maxOpen time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-maxOpen)

	stale, err := s.TimeRecordRepository.ListOpenOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale sessions: %w", err)
	}

	closed := 0
	for _, rec := range stale {
		logoutAt := rec.LoginAt.Add(maxOpen)
		duration := timerecord.DurationBetween(rec.LoginAt, logoutAt)
		rec.LogoutAt = &logoutAt
		rec.DurationMinutes = &duration

		if err := s.TimeRecordRepository.Update(ctx, rec); err != nil {
			slog.Error("Failed to force-close stale session", "record_id", rec.ID, "user_id", rec.UserID, "error", err)
			continue
		}
		slog.Info("Force-closed stale session", "record_id", rec.ID, "user_id", rec.UserID, "login_at", rec.LoginAt)
		closed++
	}

	return closed, nil
}
