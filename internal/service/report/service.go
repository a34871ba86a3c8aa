package report

import (
	"context"
	"fmt"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
)

type reportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &reportServiceImpl{reportRepo: reportRepo}
}

// AttendanceSummary implements report.ReportService.
func (s *reportServiceImpl) AttendanceSummary(ctx context.Context, filter report.SummaryFilter) (report.AttendanceSummary, error) {
	if filter.UserID == "" {
		return report.AttendanceSummary{}, report.ErrUserIDRequired
	}
	if !filter.To.After(filter.From) {
		return report.AttendanceSummary{}, report.ErrInvalidDateRange
	}

	summary, err := s.reportRepo.GetAttendanceSummary(ctx, filter)
	if err != nil {
		return report.AttendanceSummary{}, fmt.Errorf("failed to build attendance summary: %w", err)
	}
	return summary, nil
}
