package verification

import (
	"context"
	"fmt"

	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/notification"
	"github.com/attendly/attendly-backend-go/internal/domain/policy"
	"github.com/attendly/attendly-backend-go/internal/domain/verification"
)

type VerificationServiceImpl struct {
	verification.AttemptRepository
	employee.EmployeeRepository
	policy.PolicyRepository

	notificationService notification.NotificationService
}

// RecordAttempt implements verification.VerificationService. The counter
// tracks consecutive failures only: a success zeroes it, and reaching the
// policy threshold raises an admin alert and zeroes it again so the next
// failure starts a fresh run.
func (s *VerificationServiceImpl) RecordAttempt(ctx context.Context, req verification.AttemptRequest) (verification.AttemptResponse, error) {
	if err := req.Validate(); err != nil {
		return verification.AttemptResponse{}, err
	}

	if req.Success {
		if err := s.AttemptRepository.ResetFailed(ctx, req.EmployeeID); err != nil {
			return verification.AttemptResponse{}, err
		}
		return verification.AttemptResponse{EmployeeID: req.EmployeeID}, nil
	}

	count, err := s.AttemptRepository.IncrementFailed(ctx, req.EmployeeID)
	if err != nil {
		return verification.AttemptResponse{}, err
	}

	settings, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return verification.AttemptResponse{}, fmt.Errorf("failed to get policy settings: %w", err)
	}

	if count < settings.FailedAttemptAlertThreshold {
		return verification.AttemptResponse{
			EmployeeID:     req.EmployeeID,
			FailedAttempts: count,
		}, nil
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return verification.AttemptResponse{}, err
	}

	err = s.notificationService.Notify(ctx, &notification.Notification{
		EmployeeID: &req.EmployeeID,
		Type:       notification.TypeFailedVerificationAlert,
		Message: fmt.Sprintf("%s failed identity verification %d times in a row",
			emp.Name, count),
	})
	if err != nil {
		return verification.AttemptResponse{}, fmt.Errorf("failed to raise alert notification: %w", err)
	}

	if err := s.AttemptRepository.ResetFailed(ctx, req.EmployeeID); err != nil {
		return verification.AttemptResponse{}, err
	}

	return verification.AttemptResponse{
		EmployeeID:     req.EmployeeID,
		FailedAttempts: count,
		AlertTriggered: true,
	}, nil
}

func NewVerificationService(
	attemptRepository verification.AttemptRepository,
	employeeRepository employee.EmployeeRepository,
	notificationService notification.NotificationService,
	policyRepository policy.PolicyRepository,
) verification.VerificationService {
	return &VerificationServiceImpl{
		AttemptRepository:   attemptRepository,
		EmployeeRepository:  employeeRepository,
		PolicyRepository:    policyRepository,
		notificationService: notificationService,
	}
}
