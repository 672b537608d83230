// Package post implements the Post repository using PostgreSQL.
// Every read joins the author's username and the group title so feeds
// render without follow-up queries.
package post

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"p.id", "p.text", "p.created_at", "p.updated_at",
	"p.author_id", "u.username", "p.group_slug", "g.title",
}

func selectPosts() sq.SelectBuilder {
	return postgres.Builder.
		Select(columns...).
		From("posts p").
		Join("users u ON u.id = p.author_id").
		LeftJoin("groups g ON g.slug = p.group_slug")
}

func applyFilter(b sq.SelectBuilder, f domain.PostFilter) sq.SelectBuilder {
	if f.GroupSlug != nil {
		b = b.Where(sq.Eq{"p.group_slug": *f.GroupSlug})
	}
	if f.AuthorID != nil {
		b = b.Where(sq.Eq{"p.author_id": *f.AuthorID})
	}
	return b
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a post with its author and group joined.
// Returns domain.ErrNotFound if no post has this id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query, args, err := selectPosts().Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get post query: %w", err)
	}

	p, err := scanPost(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	return &p, nil
}

// List returns the posts matching the filter, newest first.
// Limit 0 means no limit. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	b := applyFilter(selectPosts(), filter).OrderBy("p.created_at DESC", "p.id DESC")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list posts query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

// Count returns the number of posts matching the filter. Limit and Offset are ignored.
func (r *Repo) Count(ctx context.Context, filter domain.PostFilter) (int, error) {
	b := applyFilter(postgres.Builder.Select("count(*)").From("posts p"), filter)

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count posts query: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}

	return int(n), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a post and returns it as stored.
// Returns domain.ErrNotFound if the author or group does not exist.
func (r *Repo) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	query, args, err := postgres.Builder.
		Insert("posts").
		Columns("text", "author_id", "group_slug").
		Values(post.Text, post.AuthorID, post.GroupSlug).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert post query: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "post", "new")
	}

	return r.GetByID(ctx, id)
}

// Update replaces the text and group of a post and bumps updated_at.
// The id, author and created_at are never written.
// Returns domain.ErrNotFound if the post (or the new group) does not exist.
func (r *Repo) Update(ctx context.Context, id int64, params domain.PostUpdateParams) (*domain.Post, error) {
	query, args, err := postgres.Builder.
		Update("posts").
		Set("text", params.Text).
		Set("group_slug", params.Group).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update post query: %w", err)
	}

	var updated int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&updated); err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	return r.GetByID(ctx, updated)
}

func scanPost(row pgx.Row) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID, &p.Text, &p.CreatedAt, &p.UpdatedAt,
		&p.AuthorID, &p.AuthorUsername, &p.GroupSlug, &p.GroupTitle,
	)
	return p, err
}
