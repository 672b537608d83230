// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectUsers() sq.SelectBuilder {
	return postgres.Builder.Select("id", "username", "password_hash", "created_at").From("users")
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByUsername returns a user by username. Matching is exact.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"username": username}, username)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key any) (*domain.User, error) {
	query, args, err := selectUsers().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the username is taken.
func (r *Repo) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Insert("users").
		Columns("username", "password_hash").
		Values(username, passwordHash).
		Suffix("RETURNING id, username, password_hash, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return &u, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
