package memory

import (
	"context"
	"sync"
	"time"

	"skillswap/internal/domain/project"
)

type ApplicationRepository struct {
	mu     sync.RWMutex
	apps   map[int64]project.Application
	nextID int64
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{apps: make(map[int64]project.Application), nextID: 1}
}

func (r *ApplicationRepository) Create(_ context.Context, a project.Application) (project.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	a.CreatedAt = time.Now().UTC()
	r.apps[a.ID] = a
	return a, nil
}

func (r *ApplicationRepository) GetByID(_ context.Context, id int64) (project.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.apps[id]
	if !ok {
		return project.Application{}, project.ErrApplicationNotFound
	}
	return a, nil
}

func (r *ApplicationRepository) ListByProject(_ context.Context, projectID int64) ([]project.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]project.Application, 0)
	for id := int64(1); id < r.nextID; id++ {
		a, ok := r.apps[id]
		if !ok {
			continue
		}
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *ApplicationRepository) SetStatus(_ context.Context, id int64, status project.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.apps[id]
	if !ok {
		return project.ErrApplicationNotFound
	}
	a.Status = status
	r.apps[id] = a
	return nil
}

var _ project.ApplicationRepository = (*ApplicationRepository)(nil)
