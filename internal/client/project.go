package client

import (
	"context"
	"log"
	"strings"

	"skillswap/internal/client/gateway"
	"skillswap/internal/client/session"
	"skillswap/internal/client/state"
	"skillswap/internal/domain/project"
)

// ProjectManager covers the project browse, create, join and
// application flows.
type ProjectManager struct {
	gw       Gateway
	session  *session.Session
	projects *state.Collection[project.Project]
	logger   *log.Logger
}

// Refresh replaces the cache with the authoritative project list. An
// unreachable service serves the last-known cache instead, which on
// first load is the seeded demo list.
func (m *ProjectManager) Refresh(ctx context.Context) []project.Project {
	projects, err := m.gw.ListProjects(ctx)
	if err != nil {
		if m.logger != nil {
			m.logger.Printf("[ProjectManager] refresh failed, serving cache | error=%v", err)
		}
		return m.projects.All()
	}
	m.projects.ReplaceAll(projects)
	return m.projects.All()
}

func (m *ProjectManager) All() []project.Project {
	return m.projects.All()
}

// Create validates before any network call: empty title, description
// or requiredSkills are rejected outright. On remote failure the
// project is still cached as a tagged pending-local record.
func (m *ProjectManager) Create(ctx context.Context, title, description string, requiredSkills []string) (state.Record[project.Project], error) {
	var zero state.Record[project.Project]

	callerID := m.session.UserID()
	if callerID == 0 {
		return zero, ErrNotAuthenticated
	}
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" || len(requiredSkills) == 0 {
		return zero, ErrInvalidInput
	}

	created, err := m.gw.CreateProject(ctx, m.session.Token(), gateway.CreateProjectRequest{
		Title:          title,
		Description:    description,
		RequiredSkills: requiredSkills,
	})
	if err == nil {
		m.projects.Upsert(created, state.OriginAuthoritative)
		return state.Record[project.Project]{Value: created, Origin: state.OriginAuthoritative}, nil
	}

	if m.logger != nil {
		m.logger.Printf("[ProjectManager] create fell back to local | error=%v", err)
	}

	placeholder := project.Project{
		ID:             m.projects.NextLocalID(),
		Title:          title,
		Description:    description,
		RequiredSkills: requiredSkills,
		CreatorID:      callerID,
		Members:        []int64{callerID},
	}
	m.projects.Upsert(placeholder, state.OriginPendingLocal)
	return state.Record[project.Project]{Value: placeholder, Origin: state.OriginPendingLocal}, nil
}

// Join adds the caller to the member list. It is idempotent on both
// paths: a second call never duplicates the member id, whether the
// remote call succeeds or the local fallback applies.
func (m *ProjectManager) Join(ctx context.Context, projectID int64) error {
	callerID := m.session.UserID()
	if callerID == 0 {
		return ErrNotAuthenticated
	}

	if err := m.gw.JoinProject(ctx, m.session.Token(), projectID); err != nil {
		if m.logger != nil {
			m.logger.Printf("[ProjectManager] join applied locally only | project_id=%d error=%v", projectID, err)
		}
	}

	m.projects.Mutate(projectID, func(p *project.Project) {
		if !p.HasMember(callerID) {
			p.Members = append(p.Members, callerID)
		}
	})
	return nil
}

// Apply submits a join application. Duplicate applications are not
// rejected here; that is the authoritative store's call.
func (m *ProjectManager) Apply(ctx context.Context, projectID int64, message string) (project.Application, error) {
	if m.session.UserID() == 0 {
		return project.Application{}, ErrNotAuthenticated
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return project.Application{}, ErrInvalidInput
	}
	return m.gw.Apply(ctx, m.session.Token(), projectID, message)
}

// Applications lists a project's applications. Load failure degrades
// to an empty list.
func (m *ProjectManager) Applications(ctx context.Context, projectID int64) []project.Application {
	apps, err := m.gw.ListApplications(ctx, m.session.Token(), projectID)
	if err != nil {
		if m.logger != nil {
			m.logger.Printf("[ProjectManager] application load failed | project_id=%d error=%v", projectID, err)
		}
		return []project.Application{}
	}
	if apps == nil {
		apps = []project.Application{}
	}
	return apps
}

// ReviewApplication accepts or declines one application. Reviewing
// does not add the applicant to the member list; joining stays a
// separate explicit action.
func (m *ProjectManager) ReviewApplication(ctx context.Context, applicationID int64, status project.ApplicationStatus) (project.Application, error) {
	if m.session.UserID() == 0 {
		return project.Application{}, ErrNotAuthenticated
	}
	if status != project.ApplicationAccepted && status != project.ApplicationDeclined {
		return project.Application{}, ErrInvalidInput
	}
	return m.gw.ReviewApplication(ctx, m.session.Token(), applicationID, status)
}
