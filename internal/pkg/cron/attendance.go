package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/policy"
)

// AttendanceJobs holds the attendance maintenance tasks.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	policyRepo     policy.PolicyRepository
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	policyRepo policy.PolicyRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		policyRepo:     policyRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_punches", 1*time.Hour, j.AutoCloseStalePunches)
}

// AutoCloseStalePunches closes punch pairs left open on past days. A missed
// punch-out is credited the mandatory working hours and nothing more, so a
// forgotten punch never accrues overtime.
func (j *AttendanceJobs) AutoCloseStalePunches(ctx context.Context) error {
	settings, err := j.policyRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get policy settings: %w", err)
	}

	nowLocal := time.Now().UTC().In(settings.Location())
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC)

	stale, err := j.attendanceRepo.ListOpenBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list open attendance records: %w", err)
	}

	closed := 0
	for _, rec := range stale {
		if rec.PunchIn == nil {
			continue
		}

		punchOut := rec.PunchIn.Add(time.Duration(settings.MandatoryWorkingHours * float64(time.Hour)))
		workingHours := settings.MandatoryWorkingHours
		overtimeHours := 0.0

		rec.PunchOut = &punchOut
		rec.WorkingHours = &workingHours
		rec.OvertimeHours = &overtimeHours

		if _, err := j.attendanceRepo.Complete(ctx, rec); err != nil {
			slog.Error("Failed to auto-close attendance record", "record_id", rec.ID, "error", err)
			continue
		}
		closed++
	}

	if closed > 0 {
		slog.Info("Auto-closed stale attendance records", "count", closed)
	}

	return nil
}
