package memory

import (
	"context"
	"sync"
	"time"

	"skillswap/internal/domain/user"
)

// UserRepository is the in-memory user store used by tests and the
// STORE=memory server mode.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]user.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]user.User), nextID: 1}
}

func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Skills == nil {
		u.Skills = []string{}
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if err == user.ErrNotFound {
		return false, nil
	}
	return false, err
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.users))
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[u.ID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	stored.Name = u.Name
	stored.Skills = append([]string(nil), u.Skills...)
	if stored.Skills == nil {
		stored.Skills = []string{}
	}
	stored.Bio = u.Bio
	stored.Avatar = u.Avatar
	stored.UpdatedAt = time.Now().UTC()
	r.users[u.ID] = stored
	return stored, nil
}

func (r *UserRepository) SetAvailability(_ context.Context, id int64, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Available = available
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return nil
}

var _ user.Repository = (*UserRepository)(nil)
