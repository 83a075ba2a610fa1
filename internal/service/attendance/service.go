package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/policy"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	policy.PolicyRepository

	now func() time.Time
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	settings, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get policy settings: %w", err)
	}

	if !settings.WithinOffice(req.Latitude, req.Longitude) {
		return attendance.RecordResponse{}, attendance.ErrOutsideGeofence
	}

	nowUTC := s.now().UTC()
	nowLocal := nowUTC.In(settings.Location())
	date := officeDate(nowLocal)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}
	if existing != nil {
		if existing.Completed() {
			return attendance.RecordResponse{}, attendance.ErrAlreadyCompleted
		}
		return attendance.RecordResponse{}, attendance.ErrAlreadyPunchedIn
	}

	status := attendance.StatusPresent
	isLate := settings.IsLate(nowLocal)
	if isLate {
		status = attendance.StatusLate
	}

	rec, err := s.AttendanceRepository.Create(ctx, attendance.Record{
		EmployeeID:       req.EmployeeID,
		Date:             date,
		PunchIn:          &nowUTC,
		PunchInLatitude:  req.Latitude,
		PunchInLongitude: req.Longitude,
		IsLate:           isLate,
		Status:           status,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.MapRecordToResponse(rec), nil
}

// PunchOut implements attendance.AttendanceService. Working hours come from
// the stored punch-in; overtime is whatever exceeds the mandatory hours of
// the policy snapshot read on the way in.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	settings, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get policy settings: %w", err)
	}

	if !settings.WithinOffice(req.Latitude, req.Longitude) {
		return attendance.RecordResponse{}, attendance.ErrOutsideGeofence
	}

	nowUTC := s.now().UTC()
	nowLocal := nowUTC.In(settings.Location())
	date := officeDate(nowLocal)

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}
	if rec == nil || rec.PunchIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNoActivePunchIn
	}
	if rec.PunchOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCompleted
	}

	workingHours := nowUTC.Sub(*rec.PunchIn).Hours()
	if workingHours < 0 {
		workingHours = 0
	}
	overtimeHours := math.Max(0, workingHours-settings.MandatoryWorkingHours)

	rec.PunchOut = &nowUTC
	rec.PunchOutLatitude = req.Latitude
	rec.PunchOutLongitude = req.Longitude
	rec.WorkingHours = &workingHours
	rec.OvertimeHours = &overtimeHours
	if overtimeHours > 0 {
		rec.Status = attendance.StatusOvertime
	}

	updated, err := s.AttendanceRepository.Complete(ctx, *rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.MapRecordToResponse(updated), nil
}

// GetToday implements attendance.AttendanceService. A nil response means
// the employee has not punched in yet today.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (*attendance.RecordResponse, error) {
	settings, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get policy settings: %w", err)
	}

	date := officeDate(s.now().UTC().In(settings.Location()))

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's record: %w", err)
	}
	if rec == nil {
		return nil, nil
	}

	resp := attendance.MapRecordToResponse(*rec)
	return &resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, employeeID string, filter attendance.HistoryFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	settings, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to get policy settings: %w", err)
	}

	to := officeDate(s.now().UTC().In(settings.Location()))
	from := to.AddDate(0, 0, -filter.Days())

	records, total, err := s.AttendanceRepository.ListByEmployeeInRange(ctx, employeeID, from, to, filter.Page, historyPageSize)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance history: %w", err)
	}

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      historyPageSize,
		Records:    mapRecords(records),
	}, nil
}

// ListRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.ReportFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListInRange(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return mapRecords(records), nil
}

const historyPageSize = 20

// officeDate truncates an office-local instant to its calendar day. The day
// is stored as a UTC midnight so DATE comparisons stay timezone-free.
func officeDate(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func mapRecords(records []attendance.Record) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.MapRecordToResponse(rec))
	}
	return responses
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	policyRepository policy.PolicyRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		PolicyRepository:     policyRepository,
		now:                  time.Now,
	}
}
