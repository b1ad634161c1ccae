package client

import (
	"context"
	"log"
	"strings"

	"skillswap/internal/client/gateway"
	"skillswap/internal/client/session"
	"skillswap/internal/client/state"
	"skillswap/internal/domain/swap"
)

// SwapManager owns the swap lifecycle on the client side: proposal,
// status transitions, the message thread, and the status history. It
// is the only manager with multi-step rules of its own; everything
// else is cache plumbing.
type SwapManager struct {
	gw      Gateway
	session *session.Session
	swaps   *state.Collection[swap.SkillSwap]
	logger  *log.Logger
}

// Propose validates locally, then asks the service to create the swap.
// On remote success the authoritative record lands in the cache. On
// remote failure a locally numbered placeholder is cached instead,
// tagged pending-local, with status forced to pending and the proposer
// forced to the caller. Precondition failures create nothing.
func (m *SwapManager) Propose(ctx context.Context, toUserID int64, offeredSkill, requestedSkill, message string) (state.Record[swap.SkillSwap], error) {
	var zero state.Record[swap.SkillSwap]

	callerID := m.session.UserID()
	if callerID == 0 {
		return zero, ErrNotAuthenticated
	}
	if toUserID <= 0 {
		return zero, ErrInvalidInput
	}
	if toUserID == callerID {
		return zero, ErrSelfSwap
	}
	offeredSkill = strings.TrimSpace(offeredSkill)
	requestedSkill = strings.TrimSpace(requestedSkill)
	message = strings.TrimSpace(message)
	if offeredSkill == "" || requestedSkill == "" || message == "" {
		return zero, ErrInvalidInput
	}

	created, err := m.gw.ProposeSwap(ctx, m.session.Token(), gateway.ProposeSwapRequest{
		ToUserID:       toUserID,
		OfferedSkill:   offeredSkill,
		RequestedSkill: requestedSkill,
		Message:        message,
	})
	if err == nil {
		rec := state.Record[swap.SkillSwap]{Value: created, Origin: state.OriginAuthoritative}
		m.swaps.Upsert(created, state.OriginAuthoritative)
		return rec, nil
	}

	if m.logger != nil {
		m.logger.Printf("[SwapManager] propose fell back to local | error=%v", err)
	}

	placeholder := swap.SkillSwap{
		ID:             m.swaps.NextLocalID(),
		FromUserID:     callerID,
		ToUserID:       toUserID,
		OfferedSkill:   offeredSkill,
		RequestedSkill: requestedSkill,
		Message:        message,
		Status:         swap.StatusPending,
	}
	m.swaps.Upsert(placeholder, state.OriginPendingLocal)
	return state.Record[swap.SkillSwap]{Value: placeholder, Origin: state.OriginPendingLocal}, nil
}

// UpdateStatus moves a swap to accepted or declined. Transitions out
// of a terminal state are rejected against the cached copy before any
// network traffic. The remote call runs first; its result replaces the
// cache entry on success, and on failure the new status is still
// applied locally as a tagged pending-local record.
func (m *SwapManager) UpdateStatus(ctx context.Context, swapID int64, newStatus swap.Status) (state.Record[swap.SkillSwap], error) {
	var zero state.Record[swap.SkillSwap]

	if m.session.UserID() == 0 {
		return zero, ErrNotAuthenticated
	}
	if newStatus != swap.StatusAccepted && newStatus != swap.StatusDeclined {
		return zero, ErrInvalidInput
	}

	cached, ok := m.swaps.FindRecord(swapID)
	if !ok {
		return zero, ErrUnknownSwap
	}
	if cached.Value.Status.Terminal() {
		return zero, ErrSwapClosed
	}

	updated, err := m.gw.UpdateSwapStatus(ctx, m.session.Token(), swapID, newStatus)
	if err == nil {
		m.swaps.Upsert(updated, state.OriginAuthoritative)
		return state.Record[swap.SkillSwap]{Value: updated, Origin: state.OriginAuthoritative}, nil
	}

	if m.logger != nil {
		m.logger.Printf("[SwapManager] status update applied locally only | swap_id=%d error=%v", swapID, err)
	}

	local := cached.Value
	local.Status = newStatus
	m.swaps.Upsert(local, state.OriginPendingLocal)
	return state.Record[swap.SkillSwap]{Value: local, Origin: state.OriginPendingLocal}, nil
}

// Messages returns the chat thread for one swap. Load failure degrades
// to an empty list.
func (m *SwapManager) Messages(ctx context.Context, swapID int64) []swap.Message {
	msgs, err := m.gw.ListSwapMessages(ctx, m.session.Token(), swapID)
	if err != nil {
		if m.logger != nil {
			m.logger.Printf("[SwapManager] message load failed | swap_id=%d error=%v", swapID, err)
		}
		return []swap.Message{}
	}
	if msgs == nil {
		msgs = []swap.Message{}
	}
	return msgs
}

// PostMessage appends to the thread. Unlike loads, a failed post is an
// error; there is no local thread to fall back onto.
func (m *SwapManager) PostMessage(ctx context.Context, swapID int64, text string) (swap.Message, error) {
	if m.session.UserID() == 0 {
		return swap.Message{}, ErrNotAuthenticated
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return swap.Message{}, ErrInvalidInput
	}
	return m.gw.PostSwapMessage(ctx, m.session.Token(), swapID, text)
}

// StatusHistory returns the audit trail, oldest first. Load failure
// degrades to an empty list.
func (m *SwapManager) StatusHistory(ctx context.Context, swapID int64) []swap.StatusEvent {
	events, err := m.gw.ListSwapHistory(ctx, m.session.Token(), swapID)
	if err != nil {
		if m.logger != nil {
			m.logger.Printf("[SwapManager] history load failed | swap_id=%d error=%v", swapID, err)
		}
		return []swap.StatusEvent{}
	}
	if events == nil {
		events = []swap.StatusEvent{}
	}
	return events
}

// Refresh replaces the cache with the authoritative swap list. An
// unreachable service keeps the current cache, pending-local records
// included.
func (m *SwapManager) Refresh(ctx context.Context) []swap.SkillSwap {
	swaps, err := m.gw.ListSwaps(ctx, m.session.Token())
	if err != nil {
		if m.logger != nil {
			m.logger.Printf("[SwapManager] refresh failed, serving cache | error=%v", err)
		}
		return m.swaps.All()
	}
	m.swaps.ReplaceAll(swaps)
	return m.swaps.All()
}

// All returns the cached swaps in insertion order.
func (m *SwapManager) All() []swap.SkillSwap {
	return m.swaps.All()
}
