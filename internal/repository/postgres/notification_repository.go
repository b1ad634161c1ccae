package postgres

import (
	"context"

	"skillswap/internal/database"
	"skillswap/internal/domain/notification"
)

type NotificationRepository struct {
	db database.DB
}

func NewNotificationRepository(db database.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO notifications (user_id, kind, body) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		n.UserID, n.Kind, n.Body,
	)
	if err := row.Scan(&n.ID, &n.CreatedAt); err != nil {
		return notification.Notification{}, err
	}
	return n, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, kind, body, read_at, created_at
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Body, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int, error) {
	var count int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read_at IS NULL`,
		userID,
	)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET read_at = now() WHERE user_id = $1 AND read_at IS NULL`,
		userID,
	)
	return err
}

var _ notification.Repository = (*NotificationRepository)(nil)
