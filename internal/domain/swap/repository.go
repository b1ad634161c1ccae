package swap

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("swap not found")

type Repository interface {
	Create(ctx context.Context, s SkillSwap) (SkillSwap, error)
	GetByID(ctx context.Context, id int64) (SkillSwap, error)
	ListByUser(ctx context.Context, userID int64) ([]SkillSwap, error)
	SetStatus(ctx context.Context, id int64, status Status) error
}

type MessageRepository interface {
	Create(ctx context.Context, m Message) (Message, error)
	ListBySwap(ctx context.Context, swapID int64) ([]Message, error)
}

type StatusEventRepository interface {
	Create(ctx context.Context, e StatusEvent) (StatusEvent, error)
	ListBySwap(ctx context.Context, swapID int64) ([]StatusEvent, error)
}
