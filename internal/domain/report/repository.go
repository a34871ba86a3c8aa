package report

import "context"

type ReportRepository interface {
	// GetAttendanceSummary aggregates closed sessions and assigned
	// shifts for one user in [From, To).
	GetAttendanceSummary(ctx context.Context, filter SummaryFilter) (AttendanceSummary, error)
}

type ReportService interface {
	AttendanceSummary(ctx context.Context, filter SummaryFilter) (AttendanceSummary, error)
}
