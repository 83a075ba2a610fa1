package notification

import (
	"context"
)

// NotificationService owns the admin alert inbox. Notify persists the alert
// and pushes it to any connected admin console.
type NotificationService interface {
	Notify(ctx context.Context, n *Notification) error
	List(ctx context.Context, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id string) error
}
