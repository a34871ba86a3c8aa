package http

import (
	"net/http"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// AttendanceSummary implements ReportHandler. The range defaults to the
// last 30 days when from/to are absent.
func (h *reportHandlerImpl) AttendanceSummary(w http.ResponseWriter, r *http.Request) {
	filter := report.SummaryFilter{
		UserID: r.URL.Query().Get("user_id"),
	}

	now := time.Now().UTC()
	filter.From = now.AddDate(0, 0, -30)
	filter.To = now

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			response.BadRequest(w, "Invalid 'from' date, expected YYYY-MM-DD", nil)
			return
		}
		filter.From = from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			response.BadRequest(w, "Invalid 'to' date, expected YYYY-MM-DD", nil)
			return
		}
		filter.To = to
	}

	result, err := h.reportService.AttendanceSummary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
