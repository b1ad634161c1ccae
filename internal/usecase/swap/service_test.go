package swap

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/repository/memory"

	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
)

func newTestService(t *testing.T) (*Service, *memory.SwapStatusEventRepository, int64, int64) {
	t.Helper()

	users := memory.NewUserRepository()
	alice, err := users.Create(context.Background(), user.User{Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("seed alice: %v", err)
	}
	bob, err := users.Create(context.Background(), user.User{Name: "Bob", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("seed bob: %v", err)
	}

	events := memory.NewSwapStatusEventRepository()
	svc := NewService(memory.NewSwapRepository(), memory.NewSwapMessageRepository(), events, users, nil)
	return svc, events, alice.ID, bob.ID
}

func TestService_Propose(t *testing.T) {
	svc, events, alice, bob := newTestService(t)

	created, err := svc.Propose(context.Background(), alice, ProposeInput{
		ToUserID:       bob,
		OfferedSkill:   "React",
		RequestedSkill: "Python",
		Message:        "let's trade",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != swap.StatusPending {
		t.Fatalf("expected pending, got %q", created.Status)
	}
	if created.FromUserID != alice || created.ToUserID != bob {
		t.Fatalf("unexpected participants: from=%d to=%d", created.FromUserID, created.ToUserID)
	}

	history, err := events.ListBySwap(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(history) != 1 || history[0].Status != swap.StatusPending {
		t.Fatalf("expected one pending event, got %+v", history)
	}
}

func TestService_Propose_SelfSwap(t *testing.T) {
	svc, _, alice, _ := newTestService(t)

	_, err := svc.Propose(context.Background(), alice, ProposeInput{
		ToUserID:       alice,
		OfferedSkill:   "Go",
		RequestedSkill: "Rust",
		Message:        "hi",
	})
	if !errors.Is(err, ErrSelfSwap) {
		t.Fatalf("expected ErrSelfSwap, got %v", err)
	}
}

func TestService_Propose_MissingFields(t *testing.T) {
	svc, _, alice, bob := newTestService(t)

	cases := []ProposeInput{
		{ToUserID: bob, OfferedSkill: "", RequestedSkill: "Python", Message: "m"},
		{ToUserID: bob, OfferedSkill: "React", RequestedSkill: "", Message: "m"},
		{ToUserID: bob, OfferedSkill: "React", RequestedSkill: "Python", Message: "  "},
	}
	for i, in := range cases {
		if _, err := svc.Propose(context.Background(), alice, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Propose_UnknownRecipient(t *testing.T) {
	svc, _, alice, _ := newTestService(t)

	_, err := svc.Propose(context.Background(), alice, ProposeInput{
		ToUserID:       9999,
		OfferedSkill:   "React",
		RequestedSkill: "Python",
		Message:        "m",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_UpdateStatus_Accept(t *testing.T) {
	svc, events, alice, bob := newTestService(t)

	created, err := svc.Propose(context.Background(), alice, ProposeInput{
		ToUserID:       bob,
		OfferedSkill:   "React",
		RequestedSkill: "Python",
		Message:        "let's trade",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), bob, created.ID, swap.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != swap.StatusAccepted {
		t.Fatalf("expected accepted, got %q", updated.Status)
	}

	history, err := events.ListBySwap(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 events, got %d", len(history))
	}
	last := history[len(history)-1]
	if last.Status != swap.StatusAccepted || last.ActorID != bob {
		t.Fatalf("unexpected terminal event %+v", last)
	}
}

func TestService_UpdateStatus_TerminalRejected(t *testing.T) {
	svc, events, alice, bob := newTestService(t)

	created, _ := svc.Propose(context.Background(), alice, ProposeInput{
		ToUserID: bob, OfferedSkill: "React", RequestedSkill: "Python", Message: "m",
	})
	if _, err := svc.UpdateStatus(context.Background(), bob, created.ID, swap.StatusAccepted); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), bob, created.ID, swap.StatusDeclined); !errors.Is(err, ErrSwapClosed) {
		t.Fatalf("expected ErrSwapClosed, got %v", err)
	}

	// The rejected call must not grow the audit trail.
	history, _ := events.ListBySwap(context.Background(), created.ID)
	if len(history) != 2 {
		t.Fatalf("expected 2 events after rejected transition, got %d", len(history))
	}
}

func TestService_UpdateStatus_OnlyRecipient(t *testing.T) {
	svc, _, alice, bob := newTestService(t)

	created, _ := svc.Propose(context.Background(), alice, ProposeInput{
		ToUserID: bob, OfferedSkill: "React", RequestedSkill: "Python", Message: "m",
	})

	if _, err := svc.UpdateStatus(context.Background(), alice, created.ID, swap.StatusAccepted); !errors.Is(err, ErrNotRecipient) {
		t.Fatalf("expected ErrNotRecipient, got %v", err)
	}
}

func TestService_UpdateStatus_InvalidTarget(t *testing.T) {
	svc, _, alice, bob := newTestService(t)

	created, _ := svc.Propose(context.Background(), alice, ProposeInput{
		ToUserID: bob, OfferedSkill: "React", RequestedSkill: "Python", Message: "m",
	})

	if _, err := svc.UpdateStatus(context.Background(), bob, created.ID, swap.StatusPending); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Messages_ParticipantOnly(t *testing.T) {
	svc, _, alice, bob := newTestService(t)

	created, _ := svc.Propose(context.Background(), alice, ProposeInput{
		ToUserID: bob, OfferedSkill: "React", RequestedSkill: "Python", Message: "m",
	})

	if _, err := svc.PostMessage(context.Background(), alice, created.ID, "first"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.PostMessage(context.Background(), bob, created.ID, "second"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	msgs, err := svc.Messages(context.Background(), alice, created.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Body != "first" || msgs[1].Body != "second" {
		t.Fatalf("messages out of order: %+v", msgs)
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt) {
			t.Fatalf("non-monotonic message timestamps")
		}
	}

	if _, err := svc.Messages(context.Background(), 9999, created.ID); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}
}

func TestService_StatusHistory_Ordering(t *testing.T) {
	svc, _, alice, bob := newTestService(t)

	created, _ := svc.Propose(context.Background(), alice, ProposeInput{
		ToUserID: bob, OfferedSkill: "React", RequestedSkill: "Python", Message: "m",
	})
	if _, err := svc.UpdateStatus(context.Background(), bob, created.ID, swap.StatusDeclined); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	history, err := svc.StatusHistory(context.Background(), bob, created.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 events, got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].CreatedAt.Before(history[i-1].CreatedAt) {
			t.Fatalf("non-monotonic history timestamps")
		}
	}
	if history[0].Status != swap.StatusPending || history[1].Status != swap.StatusDeclined {
		t.Fatalf("unexpected history order: %+v", history)
	}
}
