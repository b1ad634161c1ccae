package swap

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave s.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusDeclined
}

// CanTransition encodes the swap state machine. The only legal moves are
// pending->accepted and pending->declined; accepted and declined are
// terminal and may not be re-entered.
func CanTransition(from, to Status) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusAccepted || to == StatusDeclined
}

// SkillSwap is a bilateral skill-exchange proposal: the proposer teaches
// OfferedSkill in exchange for the recipient teaching RequestedSkill.
type SkillSwap struct {
	ID             int64
	FromUserID     int64
	ToUserID       int64
	OfferedSkill   string
	RequestedSkill string
	Message        string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Message is one chat entry in a swap's negotiation thread. Append-only,
// ordered by creation time.
type Message struct {
	ID        int64
	SwapID    int64
	SenderID  int64
	Body      string
	CreatedAt time.Time
}

// StatusEvent is one entry in a swap's append-only status audit trail.
// The swap's Status field is the projection of the latest event.
type StatusEvent struct {
	ID        int64
	SwapID    int64
	Status    Status
	ActorID   int64
	CreatedAt time.Time
}
