package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]Notification, error)
	CountUnread(ctx context.Context, userID int64) (int, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

// Notifier is the narrow interface the other usecases depend on to emit
// notifications as a side effect of domain events.
type Notifier interface {
	Notify(ctx context.Context, userID int64, kind, body string)
}
