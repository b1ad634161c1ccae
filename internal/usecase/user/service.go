package user

import (
	"context"
	"errors"
	"log"
	"strings"

	"skillswap/internal/domain/user"
	"skillswap/internal/infrastructure/cache"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// UpdateProfileInput carries the editable profile fields. Nil pointers
// and a nil skills slice leave the stored value untouched.
type UpdateProfileInput struct {
	Name   *string
	Skills []string
	Bio    *string
	Avatar *string
}

type Service struct {
	users  user.Repository
	cache  *cache.Redis
	logger *log.Logger
}

func NewService(users user.Repository, rc *cache.Redis, logger *log.Logger) *Service {
	return &Service{users: users, cache: rc, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]user.User, error) {
	var cached []user.User
	if hit, err := s.cache.GetJSON(ctx, cache.KeyUsersList, &cached); err == nil && hit {
		return cached, nil
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	for i := range users {
		users[i].PasswordHash = ""
	}

	if err := s.cache.SetJSON(ctx, cache.KeyUsersList, users); err != nil && s.logger != nil {
		s.logger.Printf("[Users] cache set failed: %v", err)
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, id int64) (user.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	u.PasswordHash = ""
	return u, nil
}

// UpdateProfile applies a partial profile edit to the caller's own
// record and returns the stored user.
func (s *Service) UpdateProfile(ctx context.Context, actorID int64, in UpdateProfileInput) (user.User, error) {
	if in.Name == nil && in.Skills == nil && in.Bio == nil && in.Avatar == nil {
		return user.User{}, ErrInvalidInput
	}

	u, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		u.Name = name
	}
	if in.Skills != nil {
		skills := make([]string, 0, len(in.Skills))
		for _, sk := range in.Skills {
			if sk = strings.TrimSpace(sk); sk != "" {
				skills = append(skills, sk)
			}
		}
		u.Skills = skills
	}
	if in.Bio != nil {
		u.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.Avatar != nil {
		u.Avatar = strings.TrimSpace(*in.Avatar)
	}

	updated, err := s.users.UpdateProfile(ctx, u)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if err := s.cache.Delete(ctx, cache.KeyUsersList); err != nil && s.logger != nil {
		s.logger.Printf("[Users] cache invalidation failed: %v", err)
	}
	updated.PasswordHash = ""
	return updated, nil
}

// ToggleAvailability flips the availability flag. Only the user themself
// may toggle it.
func (s *Service) ToggleAvailability(ctx context.Context, actorID, targetID int64) (bool, error) {
	if actorID != targetID {
		return false, ErrForbidden
	}

	u, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return false, ErrNotFound
		}
		return false, ErrInternal
	}

	next := !u.Available
	if err := s.users.SetAvailability(ctx, targetID, next); err != nil {
		return false, ErrInternal
	}

	if err := s.cache.Delete(ctx, cache.KeyUsersList); err != nil && s.logger != nil {
		s.logger.Printf("[Users] cache invalidation failed: %v", err)
	}
	return next, nil
}

// InvalidateList drops the cached user list. Called after registration so
// new users show up without waiting for the TTL.
func (s *Service) InvalidateList(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.KeyUsersList); err != nil && s.logger != nil {
		s.logger.Printf("[Users] cache invalidation failed: %v", err)
	}
}
