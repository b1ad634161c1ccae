package project

import (
	"context"
	"errors"
)

var (
	ErrNotFound            = errors.New("project not found")
	ErrApplicationNotFound = errors.New("application not found")
)

type Repository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id int64) (Project, error)
	List(ctx context.Context) ([]Project, error)

	// AddMember appends userID to the member list if absent. It reports
	// whether the list changed.
	AddMember(ctx context.Context, projectID, userID int64) (bool, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id int64) (Application, error)
	ListByProject(ctx context.Context, projectID int64) ([]Application, error)
	SetStatus(ctx context.Context, id int64, status ApplicationStatus) error
}
