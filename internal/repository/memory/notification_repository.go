package memory

import (
	"context"
	"sync"
	"time"

	"skillswap/internal/domain/notification"
)

type NotificationRepository struct {
	mu     sync.RWMutex
	items  []notification.Notification
	nextID int64
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{nextID: 1}
}

func (r *NotificationRepository) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = r.nextID
	r.nextID++
	n.CreatedAt = time.Now().UTC()
	r.items = append(r.items, n)
	return n, nil
}

func (r *NotificationRepository) ListByUser(_ context.Context, userID int64) ([]notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notification.Notification, 0)
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].UserID == userID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

func (r *NotificationRepository) CountUnread(_ context.Context, userID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.items {
		if n.UserID == userID && n.ReadAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) MarkAllRead(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for i := range r.items {
		if r.items[i].UserID == userID && r.items[i].ReadAt == nil {
			t := now
			r.items[i].ReadAt = &t
		}
	}
	return nil
}

var _ notification.Repository = (*NotificationRepository)(nil)
