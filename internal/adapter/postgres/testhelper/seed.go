package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username and a dummy password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + uniqueSuffix(),
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedGroup creates a group with a unique slug.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()

	suffix := uniqueSuffix()
	group := domain.Group{
		Slug:        "group-" + suffix,
		Title:       "Group " + suffix,
		Description: "Test group " + suffix,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO groups (slug, title, description) VALUES ($1, $2, $3)`,
		group.Slug, group.Title, group.Description,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}

	return group
}

// SeedPost creates a post by author, optionally in group (empty slug for none).
// createdAt lets tests control feed order.
func SeedPost(t *testing.T, pool *pgxpool.Pool, author uuid.UUID, groupSlug string, createdAt time.Time) domain.Post {
	t.Helper()

	var group *string
	if groupSlug != "" {
		group = &groupSlug
	}

	post := domain.Post{
		Text:      fmt.Sprintf("Seeded post %s", uniqueSuffix()),
		AuthorID:  author,
		GroupSlug: group,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
	post.UpdatedAt = post.CreatedAt

	err := pool.QueryRow(context.Background(),
		`INSERT INTO posts (text, created_at, updated_at, author_id, group_slug)
		 VALUES ($1, $2, $2, $3, $4) RETURNING id`,
		post.Text, post.CreatedAt, post.AuthorID, post.GroupSlug,
	).Scan(&post.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}

	return post
}

// SeedPosts creates n posts one minute apart, oldest first, and returns them
// in feed order (newest first).
func SeedPosts(t *testing.T, pool *pgxpool.Pool, author uuid.UUID, groupSlug string, n int) []domain.Post {
	t.Helper()

	base := time.Now().Add(-time.Duration(n) * time.Minute)
	posts := make([]domain.Post, n)
	for i := range n {
		posts[n-1-i] = SeedPost(t, pool, author, groupSlug, base.Add(time.Duration(i)*time.Minute))
	}
	return posts
}
