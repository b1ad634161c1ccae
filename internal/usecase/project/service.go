package project

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"skillswap/internal/domain/notification"
	"skillswap/internal/domain/project"
	"skillswap/internal/infrastructure/cache"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("project not found")
	ErrAppNotFound     = errors.New("application not found")
	ErrNotCreator      = errors.New("only the project creator may review applications")
	ErrAlreadyReviewed = errors.New("application already reviewed")
	ErrInternal        = errors.New("internal error")
)

type Service struct {
	projects project.Repository
	apps     project.ApplicationRepository
	cache    *cache.Redis
	notifier notification.Notifier
	logger   *log.Logger
}

func NewService(
	projects project.Repository,
	apps project.ApplicationRepository,
	rc *cache.Redis,
	notifier notification.Notifier,
	logger *log.Logger,
) *Service {
	return &Service{projects: projects, apps: apps, cache: rc, notifier: notifier, logger: logger}
}

type CreateInput struct {
	Title          string
	Description    string
	RequiredSkills []string
}

func (s *Service) Create(ctx context.Context, creatorID int64, in CreateInput) (project.Project, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" || len(in.RequiredSkills) == 0 {
		return project.Project{}, ErrInvalidInput
	}

	created, err := s.projects.Create(ctx, project.Project{
		Title:          title,
		Description:    description,
		RequiredSkills: in.RequiredSkills,
		CreatorID:      creatorID,
		Members:        []int64{creatorID},
	})
	if err != nil {
		return project.Project{}, ErrInternal
	}

	s.invalidateList(ctx)
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]project.Project, error) {
	var cached []project.Project
	if hit, err := s.cache.GetJSON(ctx, cache.KeyProjectsList, &cached); err == nil && hit {
		return cached, nil
	}

	out, err := s.projects.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if err := s.cache.SetJSON(ctx, cache.KeyProjectsList, out); err != nil && s.logger != nil {
		s.logger.Printf("[Projects] cache set failed: %v", err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (project.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return project.Project{}, ErrNotFound
		}
		return project.Project{}, ErrInternal
	}
	return p, nil
}

// Join adds the user to the member list. Idempotent: a second join is a
// no-op, never a duplicate entry.
func (s *Service) Join(ctx context.Context, userID, projectID int64) error {
	changed, err := s.projects.AddMember(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if changed {
		s.invalidateList(ctx)
	}
	return nil
}

func (s *Service) Apply(ctx context.Context, applicantID, projectID int64, message string) (project.Application, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return project.Application{}, ErrInvalidInput
	}

	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return project.Application{}, ErrNotFound
		}
		return project.Application{}, ErrInternal
	}

	// Duplicate applications are allowed here; the review flow sorts
	// them out.
	created, err := s.apps.Create(ctx, project.Application{
		ProjectID:   projectID,
		ApplicantID: applicantID,
		Message:     message,
		Status:      project.ApplicationPending,
	})
	if err != nil {
		return project.Application{}, ErrInternal
	}

	s.notify(ctx, p.CreatorID, notification.KindApplication,
		fmt.Sprintf("New application to %q", p.Title))

	return created, nil
}

func (s *Service) ListApplications(ctx context.Context, requesterID, projectID int64) ([]project.Application, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrInternal
	}
	if p.CreatorID != requesterID {
		return nil, ErrNotCreator
	}

	out, err := s.apps.ListByProject(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// ReviewApplication transitions an application exactly once. Accepting
// does NOT add the applicant to the member list; joining stays a
// separate explicit action.
func (s *Service) ReviewApplication(ctx context.Context, reviewerID, applicationID int64, status project.ApplicationStatus) (project.Application, error) {
	if status != project.ApplicationAccepted && status != project.ApplicationDeclined {
		return project.Application{}, ErrInvalidInput
	}

	a, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, project.ErrApplicationNotFound) {
			return project.Application{}, ErrAppNotFound
		}
		return project.Application{}, ErrInternal
	}

	p, err := s.projects.GetByID(ctx, a.ProjectID)
	if err != nil {
		return project.Application{}, ErrInternal
	}
	if p.CreatorID != reviewerID {
		return project.Application{}, ErrNotCreator
	}
	if a.Status != project.ApplicationPending {
		return project.Application{}, ErrAlreadyReviewed
	}

	if err := s.apps.SetStatus(ctx, applicationID, status); err != nil {
		return project.Application{}, ErrInternal
	}
	a.Status = status

	s.notify(ctx, a.ApplicantID, notification.KindApplicationReview,
		fmt.Sprintf("Your application to %q was %s", p.Title, status))

	return a, nil
}

func (s *Service) invalidateList(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.KeyProjectsList); err != nil && s.logger != nil {
		s.logger.Printf("[Projects] cache invalidation failed: %v", err)
	}
}

func (s *Service) notify(ctx context.Context, userID int64, kind, body string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, userID, kind, body)
}
