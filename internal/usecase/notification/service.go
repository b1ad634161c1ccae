package notification

import (
	"context"
	"errors"
	"log"

	"skillswap/internal/domain/notification"
)

var ErrInternal = errors.New("internal error")

// Pusher delivers a realtime copy of a stored notification, typically
// over the websocket hub. Delivery is best-effort.
type Pusher interface {
	PushToUser(userID int64, payload notification.Notification)
}

type Service struct {
	repo   notification.Repository
	pusher Pusher
	logger *log.Logger
}

func NewService(repo notification.Repository, pusher Pusher, logger *log.Logger) *Service {
	return &Service{repo: repo, pusher: pusher, logger: logger}
}

// Notify stores a notification and pushes it out. It never fails the
// calling operation: a swap proposal should not error because its
// notification could not be written.
func (s *Service) Notify(ctx context.Context, userID int64, kind, body string) {
	n, err := s.repo.Create(ctx, notification.Notification{UserID: userID, Kind: kind, Body: body})
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Notify] store failed user=%d kind=%s: %v", userID, kind, err)
		}
		return
	}
	if s.pusher != nil {
		s.pusher.PushToUser(userID, n)
	}
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]notification.Notification, error) {
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	return count, nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return ErrInternal
	}
	return nil
}

var _ notification.Notifier = (*Service)(nil)
