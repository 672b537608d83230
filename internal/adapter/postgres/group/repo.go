// Package group implements the Group repository using PostgreSQL.
package group

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Repo provides group persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new group repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectGroups() sq.SelectBuilder {
	return postgres.Builder.Select("slug", "title", "description").From("groups")
}

// GetBySlug returns a group by its slug.
// Returns domain.ErrNotFound if the group does not exist.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Group, error) {
	query, args, err := selectGroups().Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get group query: %w", err)
	}

	g, err := scanGroup(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "group", slug)
	}

	return &g, nil
}

// List returns all groups ordered by title.
// Returns an empty slice (not nil) when there are no groups.
func (r *Repo) List(ctx context.Context) ([]domain.Group, error) {
	query, args, err := selectGroups().OrderBy("title", "slug").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list groups query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.Group{}
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

// Create inserts a group.
// Returns domain.ErrAlreadyExists if the slug is taken and
// domain.ErrValidation if the slug or title breaks a table constraint.
func (r *Repo) Create(ctx context.Context, g domain.Group) (*domain.Group, error) {
	query, args, err := postgres.Builder.
		Insert("groups").
		Columns("slug", "title", "description").
		Values(g.Slug, g.Title, g.Description).
		Suffix("RETURNING slug, title, description").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert group query: %w", err)
	}

	created, err := scanGroup(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "group", g.Slug)
	}

	return &created, nil
}

func scanGroup(row pgx.Row) (domain.Group, error) {
	var g domain.Group
	err := row.Scan(&g.Slug, &g.Title, &g.Description)
	return g, err
}
