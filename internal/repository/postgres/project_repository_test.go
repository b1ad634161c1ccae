package postgres

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/database"
	"skillswap/internal/domain/project"
)

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error { return r.scan(dest...) }

// stubDB answers QueryRow and Exec only; the embedded interface covers
// the rest of database.DB for methods these tests never touch.
type stubDB struct {
	database.DB

	queryRowFn func(ctx context.Context, query string, args ...any) database.Row
	execFn     func(ctx context.Context, query string, args ...any) (int64, error)
	execCalls  int
}

func (db *stubDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return db.queryRowFn(ctx, query, args...)
}

func (db *stubDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	db.execCalls++
	return db.execFn(ctx, query, args...)
}

func TestProjectRepository_AddMember_MissingProject(t *testing.T) {
	db := &stubDB{
		queryRowFn: func(context.Context, string, ...any) database.Row {
			return stubRow{scan: func(dest ...any) error {
				*(dest[0].(*bool)) = false
				return nil
			}}
		},
		execFn: func(context.Context, string, ...any) (int64, error) {
			return 0, errors.New("insert or update on table \"project_members\" violates foreign key constraint")
		},
	}

	repo := NewProjectRepository(db)
	_, err := repo.AddMember(context.Background(), 999, 1)
	if !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected project.ErrNotFound, got %v", err)
	}
	if db.execCalls != 0 {
		t.Fatalf("no insert may run for a missing project, got %d", db.execCalls)
	}
}

func TestProjectRepository_AddMember_ReportsNewMembership(t *testing.T) {
	db := &stubDB{
		queryRowFn: func(context.Context, string, ...any) database.Row {
			return stubRow{scan: func(dest ...any) error {
				*(dest[0].(*bool)) = true
				return nil
			}}
		},
		execFn: func(context.Context, string, ...any) (int64, error) {
			return 1, nil
		},
	}

	repo := NewProjectRepository(db)
	changed, err := repo.AddMember(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !changed {
		t.Fatal("expected a new membership to report changed")
	}
}
