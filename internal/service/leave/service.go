package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/leave"
	"github.com/attendly/attendly-backend-go/internal/domain/notification"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	notificationService notification.NotificationService
}

// Submit implements leave.LeaveService. Overlaps with the employee's other
// requests are allowed; stats deduplicate covered days at read time.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		FromDate:   from,
		ToDate:     to,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.notifySubmitted(ctx, created)

	return leave.MapLeaveToResponse(created), nil
}

// notifySubmitted raises the admin inbox entry for a new request. A failed
// notification never fails the submission itself.
func (s *LeaveServiceImpl) notifySubmitted(ctx context.Context, req leave.LeaveRequest) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return
	}

	_ = s.notificationService.Notify(ctx, &notification.Notification{
		EmployeeID: &req.EmployeeID,
		Type:       notification.TypeLeaveSubmitted,
		Message: fmt.Sprintf("%s requested leave from %s to %s",
			emp.Name, req.FromDate.Format("2006-01-02"), req.ToDate.Format("2006-01-02")),
	})
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	leaves, err := s.LeaveRequestRepository.List(ctx, nil, filter.Status)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return mapLeaves(leaves), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, employeeID string) (leave.ListLeaveResponse, error) {
	leaves, err := s.LeaveRequestRepository.List(ctx, &employeeID, nil)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return mapLeaves(leaves), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, leaveID string) (leave.LeaveResponse, error) {
	return s.resolve(ctx, leaveID, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, leaveID string) (leave.LeaveResponse, error) {
	return s.resolve(ctx, leaveID, leave.StatusRejected)
}

func (s *LeaveServiceImpl) resolve(ctx context.Context, leaveID, status string) (leave.LeaveResponse, error) {
	resolved, err := s.LeaveRequestRepository.Resolve(ctx, leaveID, status)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.MapLeaveToResponse(resolved), nil
}

func mapLeaves(leaves []leave.LeaveRequest) leave.ListLeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.MapLeaveToResponse(l))
	}

	return leave.ListLeaveResponse{
		TotalCount: int64(len(responses)),
		Leaves:     responses,
	}
}

func NewLeaveService(
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	notificationService notification.NotificationService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		notificationService:    notificationService,
	}
}
