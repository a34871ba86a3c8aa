package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/sse"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/repository/postgresql"
)

const weekDays = 7

type shiftServiceImpl struct {
	db        *database.DB
	shiftRepo shift.ShiftRepository
	hub       *sse.Hub
}

func NewShiftService(db *database.DB, shiftRepo shift.ShiftRepository, hub *sse.Hub) shift.ShiftService {
	return &shiftServiceImpl{
		db:        db,
		shiftRepo: shiftRepo,
		hub:       hub,
	}
}

func claimsFromContext(ctx context.Context) (userID string, err error) {
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

// isExclusionViolation reports a violation of the no_overlapping_shifts
// exclusion constraint (SQL state 23P01).
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

// candidateWindow is one concrete [start, end) window expanded from an
// assignment request, tagged with its requested calendar date.
type candidateWindow struct {
	date  string // "2006-01-02"
	start time.Time
	end   time.Time
}

// expandWindows turns a request into its candidate windows: one for
// userDefined, seven consecutive days for autoWeekly.
func expandWindows(req shift.AssignShiftRequest) ([]candidateWindow, error) {
	shiftType := shift.ShiftType(req.ShiftType)

	var anchor time.Time
	var days int
	switch shift.Strategy(req.Strategy) {
	case shift.StrategyUserDefined:
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, shift.ErrInvalidStrategy
		}
		anchor, days = d, 1
	case shift.StrategyAutoWeekly:
		d, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, shift.ErrInvalidStrategy
		}
		anchor, days = d, weekDays
	default:
		return nil, shift.ErrInvalidStrategy
	}

	windows := make([]candidateWindow, 0, days)
	for i := 0; i < days; i++ {
		day := anchor.AddDate(0, 0, i)
		start, end, err := shift.WindowForType(shiftType, day, time.UTC)
		if err != nil {
			return nil, err
		}
		windows = append(windows, candidateWindow{
			date:  day.Format("2006-01-02"),
			start: start,
			end:   end,
		})
	}
	return windows, nil
}

// AssignShift implements shift.ShiftService.
// The whole batch is checked against a row-locked snapshot of the
// user's existing shifts and persisted in the same transaction, so a
// weekly assignment commits all seven shifts or none.
func (s *shiftServiceImpl) AssignShift(ctx context.Context, req shift.AssignShiftRequest) ([]shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	assignerID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	windows, err := expandWindows(req)
	if err != nil {
		return nil, err
	}

	// Span covering every candidate window, used to scope the row lock.
	from := windows[0].start
	to := windows[len(windows)-1].end

	var created []shift.Shift
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.shiftRepo.ListByUserForUpdate(txCtx, req.UserID, from, to)
		if err != nil {
			return fmt.Errorf("failed to load existing shifts: %w", err)
		}

		var conflictDates []string
		for _, w := range windows {
			if shift.HasConflict(w.start, w.end, existing, "") {
				conflictDates = append(conflictDates, w.date)
			}
		}
		if len(conflictDates) > 0 {
			return &shift.ConflictError{UserID: req.UserID, Dates: conflictDates}
		}

		batch := make([]shift.Shift, 0, len(windows))
		for _, w := range windows {
			batch = append(batch, shift.Shift{
				UserID:     req.UserID,
				ShiftType:  shift.ShiftType(req.ShiftType),
				StartTime:  w.start,
				EndTime:    w.end,
				AssignedBy: assignerID,
				Notes:      req.Notes,
				Status:     shift.StatusAssigned,
			})
		}

		created, err = s.shiftRepo.CreateBatch(txCtx, batch)
		if err != nil {
			if isExclusionViolation(err) {
				return &shift.ConflictError{UserID: req.UserID, Dates: datesOf(windows)}
			}
			return fmt.Errorf("failed to persist shift batch: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.notifyAssignee(req.UserID, "shift.assigned", created)

	responses := make([]shift.ShiftResponse, 0, len(created))
	for _, sh := range created {
		responses = append(responses, shift.NewShiftResponse(sh))
	}
	return responses, nil
}

func datesOf(windows []candidateWindow) []string {
	dates := make([]string, 0, len(windows))
	for _, w := range windows {
		dates = append(dates, w.date)
	}
	return dates
}

// EditShift implements shift.ShiftService.
// Re-runs the conflict check excluding the edited shift itself.
func (s *shiftServiceImpl) EditShift(ctx context.Context, req shift.EditShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	current, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return shift.ShiftResponse{}, shift.ErrInvalidShiftType
	}
	start, end, err := shift.WindowForType(shift.ShiftType(req.ShiftType), day, time.UTC)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	current.ShiftType = shift.ShiftType(req.ShiftType)
	current.StartTime = start
	current.EndTime = end
	if req.Notes != nil {
		current.Notes = req.Notes
	}
	if req.Status != nil {
		current.Status = shift.Status(*req.Status)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.shiftRepo.ListByUserForUpdate(txCtx, current.UserID, start, end)
		if err != nil {
			return fmt.Errorf("failed to load existing shifts: %w", err)
		}

		if shift.HasConflict(start, end, existing, current.ID) {
			return &shift.ConflictError{UserID: current.UserID, Dates: []string{day.Format("2006-01-02")}}
		}

		if err := s.shiftRepo.Update(txCtx, current); err != nil {
			if isExclusionViolation(err) {
				return &shift.ConflictError{UserID: current.UserID, Dates: []string{day.Format("2006-01-02")}}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	go s.notifyAssignee(current.UserID, "shift.updated", []shift.Shift{current})

	return shift.NewShiftResponse(current), nil
}

// DeleteShift implements shift.ShiftService.
// Removal cannot introduce an overlap, so no conflict check is run.
func (s *shiftServiceImpl) DeleteShift(ctx context.Context, shiftID string) error {
	current, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	if err := s.shiftRepo.Delete(ctx, shiftID); err != nil {
		return err
	}

	go s.notifyAssignee(current.UserID, "shift.deleted", []shift.Shift{current})

	return nil
}

// List implements shift.ShiftService.
func (s *shiftServiceImpl) List(ctx context.Context, filter shift.ListFilter) ([]shift.ShiftResponse, int64, error) {
	return s.list(ctx, filter)
}

// ListMine implements shift.ShiftService.
func (s *shiftServiceImpl) ListMine(ctx context.Context, filter shift.ListFilter) ([]shift.ShiftResponse, int64, error) {
	userID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	filter.UserID = userID
	return s.list(ctx, filter)
}

func (s *shiftServiceImpl) list(ctx context.Context, filter shift.ListFilter) ([]shift.ShiftResponse, int64, error) {
	shifts, total, err := s.shiftRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.NewShiftResponse(sh))
	}
	return responses, total, nil
}

// notifyAssignee publishes an SSE event to the shift's assignee.
func (s *shiftServiceImpl) notifyAssignee(userID string, event string, shifts []shift.Shift) {
	if s.hub == nil {
		return
	}

	payload := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		payload = append(payload, shift.NewShiftResponse(sh))
	}

	s.hub.Publish(userID, sse.Event{
		ID:     uuid.NewString(),
		UserID: userID,
		Event:  event,
		Data:   payload,
	})
	slog.Debug("Published shift event", "event", event, "user_id", userID, "count", len(shifts))
}
