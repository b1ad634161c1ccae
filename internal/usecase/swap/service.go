package swap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skillswap/internal/domain/notification"
	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrSelfSwap       = errors.New("cannot propose a swap with yourself")
	ErrNotFound       = errors.New("swap not found")
	ErrNotParticipant = errors.New("not a participant of this swap")
	ErrNotRecipient   = errors.New("only the recipient may respond to a swap")
	ErrSwapClosed     = errors.New("swap already accepted or declined")
	ErrInternal       = errors.New("internal error")
)

type ProposeInput struct {
	ToUserID       int64
	OfferedSkill   string
	RequestedSkill string
	Message        string
}

// Service owns the swap lifecycle server-side: creation, the single
// pending->accepted|declined transition, the chat thread and the status
// audit trail. It is the authoritative enforcement point for the rules
// the client only UI-gates.
type Service struct {
	swaps    swap.Repository
	messages swap.MessageRepository
	events   swap.StatusEventRepository
	users    user.Repository
	notifier notification.Notifier
}

func NewService(
	swaps swap.Repository,
	messages swap.MessageRepository,
	events swap.StatusEventRepository,
	users user.Repository,
	notifier notification.Notifier,
) *Service {
	return &Service{swaps: swaps, messages: messages, events: events, users: users, notifier: notifier}
}

func (s *Service) Propose(ctx context.Context, fromUserID int64, in ProposeInput) (swap.SkillSwap, error) {
	offered := strings.TrimSpace(in.OfferedSkill)
	requested := strings.TrimSpace(in.RequestedSkill)
	message := strings.TrimSpace(in.Message)
	if offered == "" || requested == "" || message == "" {
		return swap.SkillSwap{}, ErrInvalidInput
	}
	if in.ToUserID <= 0 {
		return swap.SkillSwap{}, ErrInvalidInput
	}
	if in.ToUserID == fromUserID {
		return swap.SkillSwap{}, ErrSelfSwap
	}

	if _, err := s.users.GetByID(ctx, in.ToUserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return swap.SkillSwap{}, ErrInvalidInput
		}
		return swap.SkillSwap{}, ErrInternal
	}

	created, err := s.swaps.Create(ctx, swap.SkillSwap{
		FromUserID:     fromUserID,
		ToUserID:       in.ToUserID,
		OfferedSkill:   offered,
		RequestedSkill: requested,
		Message:        message,
		Status:         swap.StatusPending,
	})
	if err != nil {
		return swap.SkillSwap{}, ErrInternal
	}

	// Initial audit entry so history starts at pending.
	if _, err := s.events.Create(ctx, swap.StatusEvent{
		SwapID:  created.ID,
		Status:  swap.StatusPending,
		ActorID: fromUserID,
	}); err != nil {
		return swap.SkillSwap{}, ErrInternal
	}

	s.notify(ctx, created.ToUserID, notification.KindSwapProposed,
		fmt.Sprintf("New skill swap proposal: %s for %s", offered, requested))

	return created, nil
}

// UpdateStatus applies the one allowed transition. Terminal states are
// rejected with ErrSwapClosed rather than silently re-appended, so the
// audit trail holds exactly one terminal event per swap.
func (s *Service) UpdateStatus(ctx context.Context, actorID, swapID int64, next swap.Status) (swap.SkillSwap, error) {
	if next != swap.StatusAccepted && next != swap.StatusDeclined {
		return swap.SkillSwap{}, ErrInvalidInput
	}

	current, err := s.swaps.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, swap.ErrNotFound) {
			return swap.SkillSwap{}, ErrNotFound
		}
		return swap.SkillSwap{}, ErrInternal
	}

	if current.ToUserID != actorID {
		return swap.SkillSwap{}, ErrNotRecipient
	}
	if !swap.CanTransition(current.Status, next) {
		if current.Status.Terminal() {
			return swap.SkillSwap{}, ErrSwapClosed
		}
		return swap.SkillSwap{}, ErrInvalidInput
	}

	if err := s.swaps.SetStatus(ctx, swapID, next); err != nil {
		return swap.SkillSwap{}, ErrInternal
	}
	if _, err := s.events.Create(ctx, swap.StatusEvent{
		SwapID:  swapID,
		Status:  next,
		ActorID: actorID,
	}); err != nil {
		return swap.SkillSwap{}, ErrInternal
	}

	current.Status = next
	s.notify(ctx, current.FromUserID, notification.KindSwapStatusChanged,
		fmt.Sprintf("Your swap proposal was %s", next))

	return current, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]swap.SkillSwap, error) {
	out, err := s.swaps.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) Messages(ctx context.Context, userID, swapID int64) ([]swap.Message, error) {
	if _, err := s.participant(ctx, userID, swapID); err != nil {
		return nil, err
	}
	out, err := s.messages.ListBySwap(ctx, swapID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) PostMessage(ctx context.Context, userID, swapID int64, body string) (swap.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return swap.Message{}, ErrInvalidInput
	}

	sw, err := s.participant(ctx, userID, swapID)
	if err != nil {
		return swap.Message{}, err
	}

	m, err := s.messages.Create(ctx, swap.Message{SwapID: swapID, SenderID: userID, Body: body})
	if err != nil {
		return swap.Message{}, ErrInternal
	}

	other := sw.FromUserID
	if userID == sw.FromUserID {
		other = sw.ToUserID
	}
	s.notify(ctx, other, notification.KindSwapMessage, "New message in your skill swap")

	return m, nil
}

func (s *Service) StatusHistory(ctx context.Context, userID, swapID int64) ([]swap.StatusEvent, error) {
	if _, err := s.participant(ctx, userID, swapID); err != nil {
		return nil, err
	}
	out, err := s.events.ListBySwap(ctx, swapID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) participant(ctx context.Context, userID, swapID int64) (swap.SkillSwap, error) {
	sw, err := s.swaps.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, swap.ErrNotFound) {
			return swap.SkillSwap{}, ErrNotFound
		}
		return swap.SkillSwap{}, ErrInternal
	}
	if sw.FromUserID != userID && sw.ToUserID != userID {
		return swap.SkillSwap{}, ErrNotParticipant
	}
	return sw, nil
}

func (s *Service) notify(ctx context.Context, userID int64, kind, body string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, userID, kind, body)
}
