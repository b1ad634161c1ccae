package postgres

import (
	"context"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/domain/project"

	"github.com/jackc/pgx/v5"
)

type ProjectRepository struct {
	db database.DB
}

func NewProjectRepository(db database.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return project.Project{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	row := tx.QueryRow(ctx,
		`INSERT INTO projects (title, description, required_skills, creator_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Description, p.RequiredSkills, p.CreatorID,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return project.Project{}, err
	}

	for _, m := range p.Members {
		if _, err := tx.Exec(ctx,
			`INSERT INTO project_members (project_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			p.ID, m,
		); err != nil {
			return project.Project{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return project.Project{}, err
	}
	return p, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (project.Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, description, required_skills, creator_id, created_at, updated_at
		 FROM projects WHERE id = $1`,
		id,
	)

	var p project.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.RequiredSkills, &p.CreatorID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}

	members, err := r.membersOf(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	p.Members = members
	if p.RequiredSkills == nil {
		p.RequiredSkills = []string{}
	}
	return p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, required_skills, creator_id, created_at, updated_at
		 FROM projects ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.RequiredSkills, &p.CreatorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if p.RequiredSkills == nil {
			p.RequiredSkills = []string{}
		}
		p.Members = []int64{}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	mrows, err := r.db.Query(ctx,
		`SELECT project_id, user_id FROM project_members ORDER BY added_at ASC, user_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer mrows.Close()

	for mrows.Next() {
		var projectID, userID int64
		if err := mrows.Scan(&projectID, &userID); err != nil {
			return nil, err
		}
		if i, ok := index[projectID]; ok {
			out[i].Members = append(out[i].Members, userID)
		}
	}
	if err := mrows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepository) AddMember(ctx context.Context, projectID, userID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, projectID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, project.ErrNotFound
	}

	n, err := r.db.Exec(ctx,
		`INSERT INTO project_members (project_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		projectID, userID,
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProjectRepository) membersOf(ctx context.Context, projectID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id FROM project_members WHERE project_id = $1 ORDER BY added_at ASC, user_id ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ project.Repository = (*ProjectRepository)(nil)
