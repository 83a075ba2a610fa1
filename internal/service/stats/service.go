package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/leave"
	"github.com/attendly/attendly-backend-go/internal/domain/policy"
	"github.com/attendly/attendly-backend-go/internal/domain/stats"
)

type StatsServiceImpl struct {
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	policy.PolicyRepository

	now func() time.Time
}

// GetStats implements stats.StatsService. Everything here is derived from
// attendance rows, approved leaves and the active-employee set; nothing is
// written back.
func (s *StatsServiceImpl) GetStats(ctx context.Context, req stats.StatsRequest) (stats.StatsSnapshot, error) {
	if err := req.Validate(); err != nil {
		return stats.StatsSnapshot{}, err
	}

	settings, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return stats.StatsSnapshot{}, fmt.Errorf("failed to get policy settings: %w", err)
	}

	nowLocal := s.now().UTC().In(settings.Location())
	today := officeDate(nowLocal)
	weekStart := today.AddDate(0, 0, -6)

	rangeStart, rangeEnd := s.resolveRange(req, today)

	activeIDs, err := s.EmployeeRepository.ListActiveIDs(ctx)
	if err != nil {
		return stats.StatsSnapshot{}, fmt.Errorf("failed to list active employees: %w", err)
	}
	active := map[string]bool{}
	for _, id := range activeIDs {
		active[id] = true
	}

	// One fetch covers the requested range and the trailing week.
	fetchFrom := minDay(rangeStart, weekStart)
	fetchTo := maxDay(rangeEnd, today)

	records, err := s.listRecords(ctx, fetchFrom, fetchTo)
	if err != nil {
		return stats.StatsSnapshot{}, err
	}

	leaves, err := s.LeaveRequestRepository.ListApprovedOverlapping(ctx, nil, fetchFrom, fetchTo)
	if err != nil {
		return stats.StatsSnapshot{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	recordFor := indexRecords(records)

	snapshot := stats.StatsSnapshot{
		StartDate:      rangeStart.Format("2006-01-02"),
		EndDate:        rangeEnd.Format("2006-01-02"),
		TotalEmployees: len(activeIDs),
	}

	// Today's roll call across all active employees.
	for _, id := range activeIDs {
		rec := recordFor(id, today)
		class := stats.ClassifyDay(rec, onApprovedLeave(leaves, id, today), today, today)

		switch {
		case class == stats.ClassOnLeave:
			snapshot.OnLeaveToday++
		case stats.Attended(class):
			snapshot.PresentToday++
			if rec.IsLate {
				snapshot.LateToday++
			}
		}
	}
	snapshot.AbsentToday = snapshot.TotalEmployees - snapshot.PresentToday - snapshot.OnLeaveToday

	// Trailing week series, oldest first.
	for day := weekStart; !day.After(today); day = day.AddDate(0, 0, 1) {
		attended, late := 0, 0
		for _, rec := range records {
			if !rec.Date.Equal(day) || !active[rec.EmployeeID] {
				continue
			}
			// Approved leave wins over whatever got punched that day.
			if onApprovedLeave(leaves, rec.EmployeeID, day) {
				continue
			}
			if stats.Attended(rec.Status) {
				attended++
			}
			if rec.IsLate {
				late++
			}
		}
		key := day.Format("2006-01-02")
		snapshot.WeeklyAttendance = append(snapshot.WeeklyAttendance, stats.DayCount{Date: key, Count: attended})
		snapshot.WeeklyLate = append(snapshot.WeeklyLate, stats.DayCount{Date: key, Count: late})
	}

	// Overtime over the requested range, scoped to the employee when named.
	for _, rec := range records {
		if rec.Date.Before(rangeStart) || rec.Date.After(rangeEnd) {
			continue
		}
		if req.EmployeeID != nil && rec.EmployeeID != *req.EmployeeID {
			continue
		}
		if onApprovedLeave(leaves, rec.EmployeeID, rec.Date) {
			continue
		}
		if rec.OvertimeHours != nil {
			snapshot.OvertimeHours += *rec.OvertimeHours
		}
	}

	if req.EmployeeID != nil && *req.EmployeeID != "" {
		s.fillEmployeeSection(&snapshot, *req.EmployeeID, recordFor, leaves, rangeStart, rangeEnd, today)
	}

	return snapshot, nil
}

// fillEmployeeSection classifies every day of the range for one employee and
// derives the attendance rate. Days on approved leave never count against
// the rate; today without a record is still undecided and excluded.
func (s *StatsServiceImpl) fillEmployeeSection(
	snapshot *stats.StatsSnapshot,
	employeeID string,
	recordFor func(string, time.Time) *attendance.Record,
	leaves []leave.LeaveRequest,
	rangeStart, rangeEnd, today time.Time,
) {
	present, late, absent := 0, 0, 0

	end := minDay(rangeEnd, today)
	for day := rangeStart; !day.After(end); day = day.AddDate(0, 0, 1) {
		rec := recordFor(employeeID, day)
		class := stats.ClassifyDay(rec, onApprovedLeave(leaves, employeeID, day), day, today)

		if stats.Attended(class) {
			present++
			if rec.IsLate {
				late++
			}
		}
		if class == stats.ClassAbsent {
			absent++
		}
	}

	rate := 0
	if working := present + absent; working > 0 {
		rate = int(math.Round(100 * float64(present) / float64(working)))
	}

	snapshot.PresentDays = &present
	snapshot.LateDays = &late
	snapshot.AbsentDays = &absent
	snapshot.AttendanceRate = &rate
}

// resolveRange applies the default window: the current office-local month
// up to today.
func (s *StatsServiceImpl) resolveRange(req stats.StatsRequest, today time.Time) (time.Time, time.Time) {
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := today

	if req.StartDate != nil && *req.StartDate != "" {
		if parsed, err := time.Parse("2006-01-02", *req.StartDate); err == nil {
			start = parsed
		}
	}
	if req.EndDate != nil && *req.EndDate != "" {
		if parsed, err := time.Parse("2006-01-02", *req.EndDate); err == nil {
			end = parsed
		}
	}

	return start, end
}

func (s *StatsServiceImpl) listRecords(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	start := from.Format("2006-01-02")
	end := to.Format("2006-01-02")

	records, err := s.AttendanceRepository.ListInRange(ctx, attendance.ReportFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return records, nil
}

// indexRecords builds a lookup by (employee, day).
func indexRecords(records []attendance.Record) func(string, time.Time) *attendance.Record {
	byKey := map[string]*attendance.Record{}
	for i := range records {
		rec := &records[i]
		byKey[rec.EmployeeID+"|"+rec.Date.Format("2006-01-02")] = rec
	}

	return func(employeeID string, day time.Time) *attendance.Record {
		return byKey[employeeID+"|"+day.Format("2006-01-02")]
	}
}

func onApprovedLeave(leaves []leave.LeaveRequest, employeeID string, day time.Time) bool {
	for _, l := range leaves {
		if l.EmployeeID == employeeID && l.Covers(day) {
			return true
		}
	}
	return false
}

func officeDate(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func minDay(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxDay(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func NewStatsService(
	attendanceRepository attendance.AttendanceRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	policyRepository policy.PolicyRepository,
) stats.StatsService {
	return &StatsServiceImpl{
		AttendanceRepository:   attendanceRepository,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		PolicyRepository:       policyRepository,
		now:                    time.Now,
	}
}
