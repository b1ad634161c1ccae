package database

import "context"

// EnsureSchema creates the tables the repositories expect. Statements are
// idempotent so startup can run this unconditionally.
func EnsureSchema(ctx context.Context, db DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			skills        TEXT[] NOT NULL DEFAULT '{}',
			bio           TEXT NOT NULL DEFAULT '',
			avatar        TEXT NOT NULL DEFAULT '',
			available     BOOLEAN NOT NULL DEFAULT TRUE,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id              BIGSERIAL PRIMARY KEY,
			title           TEXT NOT NULL,
			description     TEXT NOT NULL,
			required_skills TEXT[] NOT NULL DEFAULT '{}',
			creator_id      BIGINT NOT NULL REFERENCES users(id),
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS project_members (
			project_id BIGINT NOT NULL REFERENCES projects(id),
			user_id    BIGINT NOT NULL REFERENCES users(id),
			added_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (project_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS skill_swaps (
			id              BIGSERIAL PRIMARY KEY,
			from_user_id    BIGINT NOT NULL REFERENCES users(id),
			to_user_id      BIGINT NOT NULL REFERENCES users(id),
			offered_skill   TEXT NOT NULL,
			requested_skill TEXT NOT NULL,
			message         TEXT NOT NULL,
			status          TEXT NOT NULL DEFAULT 'pending',
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			CHECK (from_user_id <> to_user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS swap_messages (
			id         BIGSERIAL PRIMARY KEY,
			swap_id    BIGINT NOT NULL REFERENCES skill_swaps(id),
			sender_id  BIGINT NOT NULL REFERENCES users(id),
			message    TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS swap_status_events (
			id         BIGSERIAL PRIMARY KEY,
			swap_id    BIGINT NOT NULL REFERENCES skill_swaps(id),
			status     TEXT NOT NULL,
			changed_by BIGINT NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS project_applications (
			id           BIGSERIAL PRIMARY KEY,
			project_id   BIGINT NOT NULL REFERENCES projects(id),
			applicant_id BIGINT NOT NULL REFERENCES users(id),
			message      TEXT NOT NULL,
			status       TEXT NOT NULL DEFAULT 'pending',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL REFERENCES users(id),
			kind       TEXT NOT NULL,
			body       TEXT NOT NULL,
			read_at    TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_skill_swaps_from_user ON skill_swaps(from_user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_skill_swaps_to_user ON skill_swaps(to_user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_swap_messages_swap ON swap_messages(swap_id)`,
		`CREATE INDEX IF NOT EXISTS idx_swap_status_events_swap ON swap_status_events(swap_id)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_project ON project_applications(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
