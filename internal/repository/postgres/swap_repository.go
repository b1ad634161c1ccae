package postgres

import (
	"context"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/domain/swap"

	"github.com/jackc/pgx/v5"
)

type SwapRepository struct {
	db database.DB
}

func NewSwapRepository(db database.DB) *SwapRepository {
	return &SwapRepository{db: db}
}

func (r *SwapRepository) Create(ctx context.Context, s swap.SkillSwap) (swap.SkillSwap, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skill_swaps (from_user_id, to_user_id, offered_skill, requested_skill, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		s.FromUserID, s.ToUserID, s.OfferedSkill, s.RequestedSkill, s.Message, s.Status,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return swap.SkillSwap{}, err
	}
	return s, nil
}

func (r *SwapRepository) GetByID(ctx context.Context, id int64) (swap.SkillSwap, error) {
	row := r.db.QueryRow(ctx, selectSwap+` WHERE id = $1`, id)
	return scanSwap(row)
}

func (r *SwapRepository) ListByUser(ctx context.Context, userID int64) ([]swap.SkillSwap, error) {
	rows, err := r.db.Query(ctx,
		selectSwap+` WHERE from_user_id = $1 OR to_user_id = $1 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]swap.SkillSwap, 0)
	for rows.Next() {
		s, err := scanSwap(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SwapRepository) SetStatus(ctx context.Context, id int64, status swap.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE skill_swaps SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return swap.ErrNotFound
	}
	return nil
}

const selectSwap = `SELECT id, from_user_id, to_user_id, offered_skill, requested_skill, message, status, created_at, updated_at FROM skill_swaps`

func scanSwap(row database.Row) (swap.SkillSwap, error) {
	var s swap.SkillSwap
	err := row.Scan(&s.ID, &s.FromUserID, &s.ToUserID, &s.OfferedSkill, &s.RequestedSkill, &s.Message, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return swap.SkillSwap{}, swap.ErrNotFound
		}
		return swap.SkillSwap{}, err
	}
	return s, nil
}

type SwapMessageRepository struct {
	db database.DB
}

func NewSwapMessageRepository(db database.DB) *SwapMessageRepository {
	return &SwapMessageRepository{db: db}
}

func (r *SwapMessageRepository) Create(ctx context.Context, m swap.Message) (swap.Message, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO swap_messages (swap_id, sender_id, message) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		m.SwapID, m.SenderID, m.Body,
	)
	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		return swap.Message{}, err
	}
	return m, nil
}

func (r *SwapMessageRepository) ListBySwap(ctx context.Context, swapID int64) ([]swap.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, swap_id, sender_id, message, created_at
		 FROM swap_messages WHERE swap_id = $1 ORDER BY created_at ASC, id ASC`,
		swapID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]swap.Message, 0)
	for rows.Next() {
		var m swap.Message
		if err := rows.Scan(&m.ID, &m.SwapID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type SwapStatusEventRepository struct {
	db database.DB
}

func NewSwapStatusEventRepository(db database.DB) *SwapStatusEventRepository {
	return &SwapStatusEventRepository{db: db}
}

func (r *SwapStatusEventRepository) Create(ctx context.Context, e swap.StatusEvent) (swap.StatusEvent, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO swap_status_events (swap_id, status, changed_by) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		e.SwapID, e.Status, e.ActorID,
	)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return swap.StatusEvent{}, err
	}
	return e, nil
}

func (r *SwapStatusEventRepository) ListBySwap(ctx context.Context, swapID int64) ([]swap.StatusEvent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, swap_id, status, changed_by, created_at
		 FROM swap_status_events WHERE swap_id = $1 ORDER BY created_at ASC, id ASC`,
		swapID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]swap.StatusEvent, 0)
	for rows.Next() {
		var e swap.StatusEvent
		if err := rows.Scan(&e.ID, &e.SwapID, &e.Status, &e.ActorID, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var (
	_ swap.Repository            = (*SwapRepository)(nil)
	_ swap.MessageRepository     = (*SwapMessageRepository)(nil)
	_ swap.StatusEventRepository = (*SwapStatusEventRepository)(nil)
)
