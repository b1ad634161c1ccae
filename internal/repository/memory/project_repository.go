package memory

import (
	"context"
	"sync"
	"time"

	"skillswap/internal/domain/project"
)

type ProjectRepository struct {
	mu       sync.RWMutex
	projects map[int64]project.Project
	nextID   int64
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: make(map[int64]project.Project), nextID: 1}
}

func (r *ProjectRepository) Create(_ context.Context, p project.Project) (project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.RequiredSkills == nil {
		p.RequiredSkills = []string{}
	}
	if p.Members == nil {
		p.Members = []int64{}
	}
	r.projects[p.ID] = cloneProject(p)
	return p, nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id int64) (project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return project.Project{}, project.ErrNotFound
	}
	return cloneProject(p), nil
}

func (r *ProjectRepository) List(_ context.Context) ([]project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]project.Project, 0, len(r.projects))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.projects[id]; ok {
			out = append(out, cloneProject(p))
		}
	}
	return out, nil
}

func (r *ProjectRepository) AddMember(_ context.Context, projectID, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[projectID]
	if !ok {
		return false, project.ErrNotFound
	}
	if p.HasMember(userID) {
		return false, nil
	}
	p.Members = append(p.Members, userID)
	p.UpdatedAt = time.Now().UTC()
	r.projects[projectID] = p
	return true, nil
}

func cloneProject(p project.Project) project.Project {
	p.RequiredSkills = append([]string(nil), p.RequiredSkills...)
	p.Members = append([]int64(nil), p.Members...)
	return p
}

var _ project.Repository = (*ProjectRepository)(nil)
