package memory

import (
	"context"
	"sync"
	"time"

	"skillswap/internal/domain/swap"
)

type SwapRepository struct {
	mu     sync.RWMutex
	swaps  map[int64]swap.SkillSwap
	nextID int64
}

func NewSwapRepository() *SwapRepository {
	return &SwapRepository{swaps: make(map[int64]swap.SkillSwap), nextID: 1}
}

func (r *SwapRepository) Create(_ context.Context, s swap.SkillSwap) (swap.SkillSwap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	r.swaps[s.ID] = s
	return s, nil
}

func (r *SwapRepository) GetByID(_ context.Context, id int64) (swap.SkillSwap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.swaps[id]
	if !ok {
		return swap.SkillSwap{}, swap.ErrNotFound
	}
	return s, nil
}

func (r *SwapRepository) ListByUser(_ context.Context, userID int64) ([]swap.SkillSwap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]swap.SkillSwap, 0)
	for id := int64(1); id < r.nextID; id++ {
		s, ok := r.swaps[id]
		if !ok {
			continue
		}
		if s.FromUserID == userID || s.ToUserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SwapRepository) SetStatus(_ context.Context, id int64, status swap.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.swaps[id]
	if !ok {
		return swap.ErrNotFound
	}
	s.Status = status
	s.UpdatedAt = time.Now().UTC()
	r.swaps[id] = s
	return nil
}

type SwapMessageRepository struct {
	mu       sync.RWMutex
	messages []swap.Message
	nextID   int64
}

func NewSwapMessageRepository() *SwapMessageRepository {
	return &SwapMessageRepository{nextID: 1}
}

func (r *SwapMessageRepository) Create(_ context.Context, m swap.Message) (swap.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	m.CreatedAt = time.Now().UTC()
	r.messages = append(r.messages, m)
	return m, nil
}

func (r *SwapMessageRepository) ListBySwap(_ context.Context, swapID int64) ([]swap.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]swap.Message, 0)
	for _, m := range r.messages {
		if m.SwapID == swapID {
			out = append(out, m)
		}
	}
	return out, nil
}

type SwapStatusEventRepository struct {
	mu     sync.RWMutex
	events []swap.StatusEvent
	nextID int64
}

func NewSwapStatusEventRepository() *SwapStatusEventRepository {
	return &SwapStatusEventRepository{nextID: 1}
}

func (r *SwapStatusEventRepository) Create(_ context.Context, e swap.StatusEvent) (swap.StatusEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	e.CreatedAt = time.Now().UTC()
	r.events = append(r.events, e)
	return e, nil
}

func (r *SwapStatusEventRepository) ListBySwap(_ context.Context, swapID int64) ([]swap.StatusEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]swap.StatusEvent, 0)
	for _, e := range r.events {
		if e.SwapID == swapID {
			out = append(out, e)
		}
	}
	return out, nil
}

var (
	_ swap.Repository            = (*SwapRepository)(nil)
	_ swap.MessageRepository     = (*SwapMessageRepository)(nil)
	_ swap.StatusEventRepository = (*SwapStatusEventRepository)(nil)
)
