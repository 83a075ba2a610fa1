package notification

import (
	"context"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error

	// List returns notifications newest first. unreadOnly narrows to unread.
	List(ctx context.Context, unreadOnly bool) ([]Notification, error)

	MarkRead(ctx context.Context, id string) error
}
