package stats

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/leave"
	"github.com/attendly/attendly-backend-go/internal/domain/policy"
	"github.com/attendly/attendly-backend-go/internal/domain/stats"
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePolicyRepo struct {
	settings policy.Settings
}

func (r *fakePolicyRepo) Get(ctx context.Context) (policy.Settings, error) {
	return r.settings, nil
}

func (r *fakePolicyRepo) Update(ctx context.Context, settings policy.Settings) (policy.Settings, error) {
	r.settings = settings
	return r.settings, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) Complete(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (r *fakeAttendanceRepo) ListByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time, page, limit int) ([]attendance.Record, int64, error) {
	return nil, 0, nil
}

func (r *fakeAttendanceRepo) ListInRange(ctx context.Context, filter attendance.ReportFilter) ([]attendance.Record, error) {
	return r.records, nil
}

func (r *fakeAttendanceRepo) ListOpenBefore(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	return nil, nil
}

type fakeLeaveRepo struct {
	leaves []leave.LeaveRequest
}

func (r *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.leaves = append(r.leaves, req)
	return req, nil
}

func (r *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *fakeLeaveRepo) List(ctx context.Context, employeeID *string, status *string) ([]leave.LeaveRequest, error) {
	return r.leaves, nil
}

func (r *fakeLeaveRepo) Resolve(ctx context.Context, id string, status string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *fakeLeaveRepo) ListApprovedOverlapping(ctx context.Context, employeeID *string, from, to time.Time) ([]leave.LeaveRequest, error) {
	matched := []leave.LeaveRequest{}
	for _, l := range r.leaves {
		if l.Status != leave.StatusApproved {
			continue
		}
		if l.FromDate.After(to) || l.ToDate.Before(from) {
			continue
		}
		matched = append(matched, l)
	}
	return matched, nil
}

type fakeEmployeeRepo struct {
	activeIDs []string
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status string) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (r *fakeEmployeeRepo) ListActiveIDs(ctx context.Context) ([]string, error) {
	return r.activeIDs, nil
}

func (r *fakeEmployeeRepo) ListDepartments(ctx context.Context) ([]employee.Department, error) {
	return nil, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(employeeID string, date time.Time, status string, isLate bool) attendance.Record {
	in := date.Add(9 * time.Hour)
	return attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		PunchIn:    &in,
		IsLate:     isLate,
		Status:     status,
	}
}

func newTestService(
	records []attendance.Record,
	leaves []leave.LeaveRequest,
	activeIDs []string,
	now time.Time,
) *StatsServiceImpl {
	return &StatsServiceImpl{
		AttendanceRepository:   &fakeAttendanceRepo{records: records},
		LeaveRequestRepository: &fakeLeaveRepo{leaves: leaves},
		EmployeeRepository:     &fakeEmployeeRepo{activeIDs: activeIDs},
		PolicyRepository:       &fakePolicyRepo{settings: policy.Settings{Timezone: "UTC", LatePunchTime: "09:00", MandatoryWorkingHours: 8}},
		now:                    func() time.Time { return now },
	}
}

func strPtr(s string) *string {
	return &s
}

func TestStatsService_TodayRollCall(t *testing.T) {
	ctx := context.Background()
	today := day(2026, 3, 10)

	records := []attendance.Record{
		record("emp-1", today, attendance.StatusPresent, false),
		record("emp-2", today, attendance.StatusLate, true),
	}
	leaves := []leave.LeaveRequest{{
		EmployeeID: "emp-3",
		FromDate:   day(2026, 3, 9),
		ToDate:     day(2026, 3, 11),
		Status:     leave.StatusApproved,
	}}

	svc := newTestService(records, leaves, []string{"emp-1", "emp-2", "emp-3", "emp-4"}, today.Add(10*time.Hour))
	snapshot, err := svc.GetStats(ctx, stats.StatsRequest{})

	require.NoError(t, err)
	assert.Equal(t, 4, snapshot.TotalEmployees)
	assert.Equal(t, 2, snapshot.PresentToday)
	assert.Equal(t, 1, snapshot.LateToday)
	assert.Equal(t, 1, snapshot.OnLeaveToday)
	assert.Equal(t, 1, snapshot.AbsentToday)
}

func TestStatsService_WeeklySeries(t *testing.T) {
	ctx := context.Background()
	today := day(2026, 3, 10)

	records := []attendance.Record{
		record("emp-1", today, attendance.StatusPresent, false),
		record("emp-1", day(2026, 3, 9), attendance.StatusLate, true),
		record("emp-2", day(2026, 3, 9), attendance.StatusPresent, false),
		// Outside the trailing week.
		record("emp-1", day(2026, 3, 1), attendance.StatusPresent, false),
	}

	svc := newTestService(records, nil, []string{"emp-1", "emp-2"}, today.Add(10*time.Hour))
	snapshot, err := svc.GetStats(ctx, stats.StatsRequest{})

	require.NoError(t, err)
	require.Len(t, snapshot.WeeklyAttendance, 7)
	require.Len(t, snapshot.WeeklyLate, 7)

	assert.Equal(t, "2026-03-04", snapshot.WeeklyAttendance[0].Date)
	assert.Equal(t, "2026-03-10", snapshot.WeeklyAttendance[6].Date)
	assert.Equal(t, 1, snapshot.WeeklyAttendance[6].Count)
	assert.Equal(t, 2, snapshot.WeeklyAttendance[5].Count)
	assert.Equal(t, 1, snapshot.WeeklyLate[5].Count)
	assert.Equal(t, 0, snapshot.WeeklyLate[6].Count)
}

func TestStatsService_ApprovedLeaveExcludedFromWeeklyAndOvertime(t *testing.T) {
	ctx := context.Background()
	today := day(2026, 3, 10)

	// A punch slipped in on a day fully covered by approved leave.
	onLeaveDay := record("emp-1", day(2026, 3, 9), attendance.StatusLate, true)
	overtime := 2.0
	onLeaveDay.OvertimeHours = &overtime

	leaves := []leave.LeaveRequest{{
		EmployeeID: "emp-1",
		FromDate:   day(2026, 3, 9),
		ToDate:     day(2026, 3, 9),
		Status:     leave.StatusApproved,
	}}

	svc := newTestService([]attendance.Record{onLeaveDay}, leaves, []string{"emp-1"}, today.Add(10*time.Hour))
	snapshot, err := svc.GetStats(ctx, stats.StatsRequest{})

	require.NoError(t, err)
	require.Len(t, snapshot.WeeklyAttendance, 7)
	assert.Equal(t, "2026-03-09", snapshot.WeeklyAttendance[5].Date)
	assert.Equal(t, 0, snapshot.WeeklyAttendance[5].Count)
	assert.Equal(t, 0, snapshot.WeeklyLate[5].Count)
	assert.InDelta(t, 0, snapshot.OvertimeHours, 0.001)
}

func TestStatsService_OvertimeAggregate(t *testing.T) {
	ctx := context.Background()
	today := day(2026, 3, 10)

	withOvertime := record("emp-1", day(2026, 3, 5), attendance.StatusOvertime, false)
	overtime := 1.5
	withOvertime.OvertimeHours = &overtime

	other := record("emp-2", day(2026, 3, 6), attendance.StatusOvertime, false)
	otherOvertime := 2.0
	other.OvertimeHours = &otherOvertime

	svc := newTestService([]attendance.Record{withOvertime, other}, nil, []string{"emp-1", "emp-2"}, today.Add(10*time.Hour))

	snapshot, err := svc.GetStats(ctx, stats.StatsRequest{})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, snapshot.OvertimeHours, 0.001)

	scoped, err := svc.GetStats(ctx, stats.StatsRequest{EmployeeID: strPtr("emp-1")})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, scoped.OvertimeHours, 0.001)
}

func TestStatsService_EmployeeSection(t *testing.T) {
	ctx := context.Background()
	today := day(2026, 3, 10)

	records := []attendance.Record{
		record("emp-1", day(2026, 3, 2), attendance.StatusPresent, false),
		record("emp-1", day(2026, 3, 3), attendance.StatusLate, true),
	}
	leaves := []leave.LeaveRequest{{
		EmployeeID: "emp-1",
		FromDate:   day(2026, 3, 4),
		ToDate:     day(2026, 3, 4),
		Status:     leave.StatusApproved,
	}}

	svc := newTestService(records, leaves, []string{"emp-1"}, today.Add(10*time.Hour))
	snapshot, err := svc.GetStats(ctx, stats.StatsRequest{
		EmployeeID: strPtr("emp-1"),
		StartDate:  strPtr("2026-03-02"),
		EndDate:    strPtr("2026-03-06"),
	})

	require.NoError(t, err)
	require.NotNil(t, snapshot.PresentDays)
	require.NotNil(t, snapshot.AttendanceRate)
	assert.Equal(t, 2, *snapshot.PresentDays)
	assert.Equal(t, 1, *snapshot.LateDays)
	// March 5 and 6 passed with no record and no leave.
	assert.Equal(t, 2, *snapshot.AbsentDays)
	assert.Equal(t, 50, *snapshot.AttendanceRate)
}

func TestStatsService_ApprovedLeaveNeverCountsAbsent(t *testing.T) {
	ctx := context.Background()
	today := day(2026, 3, 10)

	leaves := []leave.LeaveRequest{{
		EmployeeID: "emp-1",
		FromDate:   day(2026, 3, 2),
		ToDate:     day(2026, 3, 6),
		Status:     leave.StatusApproved,
	}}

	svc := newTestService(nil, leaves, []string{"emp-1"}, today.Add(10*time.Hour))
	snapshot, err := svc.GetStats(ctx, stats.StatsRequest{
		EmployeeID: strPtr("emp-1"),
		StartDate:  strPtr("2026-03-02"),
		EndDate:    strPtr("2026-03-06"),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, *snapshot.AbsentDays)
	assert.Equal(t, 0, *snapshot.PresentDays)
	assert.Equal(t, 0, *snapshot.AttendanceRate)
}

func TestStatsService_PendingLeaveStillAbsent(t *testing.T) {
	ctx := context.Background()
	today := day(2026, 3, 10)

	leaves := []leave.LeaveRequest{{
		EmployeeID: "emp-1",
		FromDate:   day(2026, 3, 2),
		ToDate:     day(2026, 3, 6),
		Status:     leave.StatusPending,
	}}

	svc := newTestService(nil, leaves, []string{"emp-1"}, today.Add(10*time.Hour))
	snapshot, err := svc.GetStats(ctx, stats.StatsRequest{
		EmployeeID: strPtr("emp-1"),
		StartDate:  strPtr("2026-03-02"),
		EndDate:    strPtr("2026-03-06"),
	})

	require.NoError(t, err)
	assert.Equal(t, 5, *snapshot.AbsentDays)
}

func TestStatsService_TodayWithoutRecordIsUndecided(t *testing.T) {
	ctx := context.Background()
	today := day(2026, 3, 10)

	records := []attendance.Record{
		record("emp-1", day(2026, 3, 9), attendance.StatusPresent, false),
	}

	svc := newTestService(records, nil, []string{"emp-1"}, today.Add(8*time.Hour))
	snapshot, err := svc.GetStats(ctx, stats.StatsRequest{
		EmployeeID: strPtr("emp-1"),
		StartDate:  strPtr("2026-03-09"),
		EndDate:    strPtr("2026-03-10"),
	})

	require.NoError(t, err)
	// Only March 9 is decided; today never counts absent before it ends.
	assert.Equal(t, 1, *snapshot.PresentDays)
	assert.Equal(t, 0, *snapshot.AbsentDays)
	assert.Equal(t, 100, *snapshot.AttendanceRate)
}

func TestStatsService_InvalidRange(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil, nil, nil, day(2026, 3, 10))

	_, err := svc.GetStats(ctx, stats.StatsRequest{
		StartDate: strPtr("2026-03-10"),
		EndDate:   strPtr("2026-03-01"),
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
}
