package verification

import (
	"context"
	"testing"

	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/notification"
	"github.com/attendly/attendly-backend-go/internal/domain/policy"
	"github.com/attendly/attendly-backend-go/internal/domain/verification"
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttemptRepo struct {
	counts map[string]int
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{counts: map[string]int{}}
}

func (r *fakeAttemptRepo) IncrementFailed(ctx context.Context, employeeID string) (int, error) {
	r.counts[employeeID]++
	return r.counts[employeeID], nil
}

func (r *fakeAttemptRepo) ResetFailed(ctx context.Context, employeeID string) error {
	r.counts[employeeID] = 0
	return nil
}

type fakeEmployeeRepo struct{}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, Name: "Asha Verma"}, nil
}

func (r *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status string) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (r *fakeEmployeeRepo) ListActiveIDs(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) ListDepartments(ctx context.Context) ([]employee.Department, error) {
	return nil, nil
}

type fakeNotificationService struct {
	created []notification.Notification
}

func (s *fakeNotificationService) Notify(ctx context.Context, n *notification.Notification) error {
	s.created = append(s.created, *n)
	return nil
}

func (s *fakeNotificationService) List(ctx context.Context, unreadOnly bool) ([]notification.NotificationResponse, error) {
	return nil, nil
}

func (s *fakeNotificationService) MarkRead(ctx context.Context, id string) error {
	return nil
}

type fakePolicyRepo struct {
	threshold int
}

func (r *fakePolicyRepo) Get(ctx context.Context) (policy.Settings, error) {
	return policy.Settings{FailedAttemptAlertThreshold: r.threshold, Timezone: "UTC"}, nil
}

func (r *fakePolicyRepo) Update(ctx context.Context, settings policy.Settings) (policy.Settings, error) {
	return settings, nil
}

func newTestService(attempts *fakeAttemptRepo, notifications *fakeNotificationService, threshold int) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		AttemptRepository:   attempts,
		EmployeeRepository:  &fakeEmployeeRepo{},
		PolicyRepository:    &fakePolicyRepo{threshold: threshold},
		notificationService: notifications,
	}
}

func TestVerificationService_FailureBelowThreshold(t *testing.T) {
	ctx := context.Background()
	attempts := newFakeAttemptRepo()
	notifications := &fakeNotificationService{}
	svc := newTestService(attempts, notifications, 3)

	resp, err := svc.RecordAttempt(ctx, verification.AttemptRequest{EmployeeID: "emp-1", Success: false})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.FailedAttempts)
	assert.False(t, resp.AlertTriggered)
	assert.Empty(t, notifications.created)
}

func TestVerificationService_ThresholdRaisesAlertAndResets(t *testing.T) {
	ctx := context.Background()
	attempts := newFakeAttemptRepo()
	notifications := &fakeNotificationService{}
	svc := newTestService(attempts, notifications, 3)

	req := verification.AttemptRequest{EmployeeID: "emp-1", Success: false}

	for i := 0; i < 2; i++ {
		resp, err := svc.RecordAttempt(ctx, req)
		require.NoError(t, err)
		assert.False(t, resp.AlertTriggered)
	}

	resp, err := svc.RecordAttempt(ctx, req)
	require.NoError(t, err)
	assert.True(t, resp.AlertTriggered)
	assert.Equal(t, 3, resp.FailedAttempts)

	require.Len(t, notifications.created, 1)
	assert.Equal(t, notification.TypeFailedVerificationAlert, notifications.created[0].Type)
	assert.Contains(t, notifications.created[0].Message, "Asha Verma")

	// The counter restarts after the alert.
	assert.Equal(t, 0, attempts.counts["emp-1"])

	next, err := svc.RecordAttempt(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, next.FailedAttempts)
	assert.False(t, next.AlertTriggered)
}

func TestVerificationService_SuccessResetsCounter(t *testing.T) {
	ctx := context.Background()
	attempts := newFakeAttemptRepo()
	notifications := &fakeNotificationService{}
	svc := newTestService(attempts, notifications, 3)

	fail := verification.AttemptRequest{EmployeeID: "emp-1", Success: false}
	_, err := svc.RecordAttempt(ctx, fail)
	require.NoError(t, err)
	_, err = svc.RecordAttempt(ctx, fail)
	require.NoError(t, err)

	resp, err := svc.RecordAttempt(ctx, verification.AttemptRequest{EmployeeID: "emp-1", Success: true})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.FailedAttempts)
	assert.False(t, resp.AlertTriggered)

	// A later failure starts a fresh run, so no alert at the old pace.
	third, err := svc.RecordAttempt(ctx, fail)
	require.NoError(t, err)
	assert.Equal(t, 1, third.FailedAttempts)
	assert.Empty(t, notifications.created)
}

func TestVerificationService_MissingEmployeeID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttemptRepo(), &fakeNotificationService{}, 3)

	_, err := svc.RecordAttempt(ctx, verification.AttemptRequest{Success: false})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "employee_id")
}
