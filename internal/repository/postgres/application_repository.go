package postgres

import (
	"context"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/domain/project"

	"github.com/jackc/pgx/v5"
)

type ApplicationRepository struct {
	db database.DB
}

func NewApplicationRepository(db database.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a project.Application) (project.Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO project_applications (project_id, applicant_id, message, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.ProjectID, a.ApplicantID, a.Message, a.Status,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return project.Application{}, err
	}
	return a, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (project.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, project_id, applicant_id, message, status, created_at
		 FROM project_applications WHERE id = $1`,
		id,
	)

	var a project.Application
	err := row.Scan(&a.ID, &a.ProjectID, &a.ApplicantID, &a.Message, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Application{}, project.ErrApplicationNotFound
		}
		return project.Application{}, err
	}
	return a, nil
}

func (r *ApplicationRepository) ListByProject(ctx context.Context, projectID int64) ([]project.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, project_id, applicant_id, message, status, created_at
		 FROM project_applications WHERE project_id = $1 ORDER BY created_at ASC, id ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Application, 0)
	for rows.Next() {
		var a project.Application
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.ApplicantID, &a.Message, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ApplicationRepository) SetStatus(ctx context.Context, id int64, status project.ApplicationStatus) error {
	n, err := r.db.Exec(ctx,
		`UPDATE project_applications SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return project.ErrApplicationNotFound
	}
	return nil
}

var _ project.ApplicationRepository = (*ApplicationRepository)(nil)
