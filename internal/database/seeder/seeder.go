package seeder

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"skillswap/internal/domain/project"
	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
)

// Repos is the store surface the seeder writes through. Going through
// the repositories keeps seeding identical for the postgres and the
// in-memory store.
type Repos struct {
	Users  user.Repository
	Projs  project.Repository
	Swaps  swap.Repository
	Events swap.StatusEventRepository
}

type Seeder struct {
	repos  Repos
	logger *log.Logger
}

func New(repos Repos, logger *log.Logger) *Seeder {
	return &Seeder{repos: repos, logger: logger}
}

// Run inserts the demo dataset if the store holds no users yet. It is
// a no-op on a populated store so restarts never duplicate data.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.repos.Users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		if s.logger != nil {
			s.logger.Printf("[Seeder] skipped | users=%d", len(existing))
		}
		return nil
	}

	userIDs, err := s.seedUsers(ctx)
	if err != nil {
		return err
	}
	if err := s.seedProjects(ctx, userIDs); err != nil {
		return err
	}
	if err := s.seedSwaps(ctx, userIDs); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Printf("[Seeder] done | users=%d projects=%d swaps=%d", len(seedUsers), len(seedProjects), len(seedSwaps))
	}
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) ([]int64, error) {
	// Every demo account shares the same password.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(seedUsers))
	for _, u := range seedUsers {
		u.PasswordHash = string(hash)
		created, err := s.repos.Users.Create(ctx, u)
		if err != nil {
			return nil, err
		}
		ids = append(ids, created.ID)
	}
	return ids, nil
}

func (s *Seeder) seedProjects(ctx context.Context, userIDs []int64) error {
	for i, p := range seedProjects {
		creator := userIDs[seedProjectCreators[i]]
		p.CreatorID = creator
		p.Members = []int64{creator}
		if _, err := s.repos.Projs.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedSwaps(ctx context.Context, userIDs []int64) error {
	for i, sw := range seedSwaps {
		sw.FromUserID = userIDs[seedSwapParties[i][0]]
		sw.ToUserID = userIDs[seedSwapParties[i][1]]

		status := sw.Status
		sw.Status = swap.StatusPending
		created, err := s.repos.Swaps.Create(ctx, sw)
		if err != nil {
			return err
		}

		if _, err := s.repos.Events.Create(ctx, swap.StatusEvent{
			SwapID:  created.ID,
			Status:  swap.StatusPending,
			ActorID: created.FromUserID,
		}); err != nil {
			return err
		}

		if status == swap.StatusPending {
			continue
		}

		// Replay the accepted demo swap through the state machine so
		// its audit trail matches organically created data.
		if err := s.repos.Swaps.SetStatus(ctx, created.ID, status); err != nil {
			return err
		}
		if _, err := s.repos.Events.Create(ctx, swap.StatusEvent{
			SwapID:  created.ID,
			Status:  status,
			ActorID: created.ToUserID,
		}); err != nil {
			return err
		}
	}
	return nil
}
