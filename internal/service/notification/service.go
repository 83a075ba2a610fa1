package notification

import (
	"context"
	"fmt"

	"github.com/attendly/attendly-backend-go/internal/domain/notification"
	"github.com/attendly/attendly-backend-go/internal/pkg/sse"
)

type NotificationServiceImpl struct {
	notification.NotificationRepository
	hub *sse.Hub
}

// Notify implements notification.NotificationService. The alert is stored
// first; the live push is best effort on top of that.
func (s *NotificationServiceImpl) Notify(ctx context.Context, n *notification.Notification) error {
	if err := s.NotificationRepository.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	s.hub.Broadcast(sse.Event{
		Event: "notification",
		Data:  notification.MapNotificationToResponse(*n),
	})

	return nil
}

// List implements notification.NotificationService.
func (s *NotificationServiceImpl) List(ctx context.Context, unreadOnly bool) ([]notification.NotificationResponse, error) {
	notifications, err := s.NotificationRepository.List(ctx, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, notification.MapNotificationToResponse(n))
	}

	return responses, nil
}

// MarkRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.NotificationRepository.MarkRead(ctx, id)
}

func NewNotificationService(notificationRepository notification.NotificationRepository, hub *sse.Hub) notification.NotificationService {
	return &NotificationServiceImpl{
		NotificationRepository: notificationRepository,
		hub:                    hub,
	}
}
