package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// GetAttendanceSummary implements report.ReportRepository.
// Overtime is worked time not covered by the user's shift windows,
// computed as the sum of each session minus its intersection with
// every assigned shift in the range.
func (r *reportRepository) GetAttendanceSummary(ctx context.Context, filter report.SummaryFilter) (report.AttendanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH sessions AS (
			SELECT t.login_at, t.logout_at, COALESCE(t.duration_minutes, 0) AS minutes
			FROM time_records t
			WHERE t.user_id = $1
			  AND t.logout_at IS NOT NULL
			  AND t.login_at >= $2
			  AND t.login_at < $3
		),
		covered AS (
			SELECT s.login_at, s.minutes,
				   COALESCE(SUM(
					   GREATEST(0, EXTRACT(EPOCH FROM (
						   LEAST(s.logout_at, sh.end_time) - GREATEST(s.login_at, sh.start_time)
					   )) / 60)::int
				   ), 0) AS covered_minutes
			FROM sessions s
			LEFT JOIN shifts sh
			  ON sh.user_id = $1
			 AND sh.start_time < s.logout_at
			 AND sh.end_time > s.login_at
			GROUP BY s.login_at, s.minutes
		)
		SELECT
			COALESCE((SELECT full_name FROM users WHERE id = $1), ''),
			(SELECT COUNT(*) FROM sessions),
			COALESCE((SELECT SUM(minutes) FROM sessions), 0),
			(SELECT COUNT(*) FROM shifts
			  WHERE user_id = $1 AND start_time >= $2 AND start_time < $3),
			COALESCE((SELECT SUM(GREATEST(0, minutes - covered_minutes)) FROM covered), 0)
	`

	summary := report.AttendanceSummary{
		UserID: filter.UserID,
		From:   filter.From.Format("2006-01-02"),
		To:     filter.To.Format("2006-01-02"),
	}

	err := q.QueryRow(ctx, query, filter.UserID, filter.From, filter.To).Scan(
		&summary.UserName,
		&summary.SessionCount,
		&summary.WorkedMinutes,
		&summary.ScheduledShifts,
		&summary.OvertimeMinutes,
	)
	if err != nil {
		return report.AttendanceSummary{}, fmt.Errorf("failed to get attendance summary: %w", err)
	}

	return summary, nil
}
