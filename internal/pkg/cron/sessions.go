package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timerecord"
)

type SessionJobs struct {
	timeRecordSvc timerecord.TimeRecordService
	maxOpen       time.Duration
	sweepInterval time.Duration
}

func NewSessionJobs(timeRecordSvc timerecord.TimeRecordService, maxOpen, sweepInterval time.Duration) *SessionJobs {
	return &SessionJobs{
		timeRecordSvc: timeRecordSvc,
		maxOpen:       maxOpen,
		sweepInterval: sweepInterval,
	}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_stale_sessions", j.sweepInterval, j.CloseStaleSessions)
}

// CloseStaleSessions force-closes sessions that stayed open longer than
// the configured maximum. Check-in itself rejects while a session is
// open, so without this sweep a forgotten check-out locks the user out.
func (j *SessionJobs) CloseStaleSessions(ctx context.Context) error {
	closed, err := j.timeRecordSvc.CloseStaleSessions(ctx, j.maxOpen)
	if err != nil {
		return fmt.Errorf("failed to close stale sessions: %w", err)
	}

	if closed > 0 {
		slog.Info("Cron: Closed stale sessions", "count", closed, "max_open", j.maxOpen)
	}
	return nil
}
