// Package post implements the feeds, the detail view and the authoring
// workflow for posts.
package post

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
	"github.com/heartmarshall/yatube-backend/pkg/paginate"
)

type postRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	Count(ctx context.Context, filter domain.PostFilter) (int, error)
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Update(ctx context.Context, id int64, params domain.PostUpdateParams) (*domain.Post, error)
}

type groupRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type eventPublisher interface {
	PostCreated(ctx context.Context, post *domain.Post) error
	PostUpdated(ctx context.Context, post *domain.Post) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides post browsing and authoring operations.
type Service struct {
	posts    postRepo
	groups   groupRepo
	users    userRepo
	events   eventPublisher
	tx       txManager
	pageSize int
	log      *slog.Logger
}

// NewService creates a new Post service. pageSize below 1 falls back to
// paginate.DefaultPerPage.
func NewService(
	log *slog.Logger,
	posts postRepo,
	groups groupRepo,
	users userRepo,
	events eventPublisher,
	tx txManager,
	pageSize int,
) *Service {
	if pageSize < 1 {
		pageSize = paginate.DefaultPerPage
	}
	return &Service{
		posts:    posts,
		groups:   groups,
		users:    users,
		events:   events,
		tx:       tx,
		pageSize: pageSize,
		log:      log.With("service", "post"),
	}
}

// identityFromCtx returns the acting identity. Anonymous visitors get the zero value.
func identityFromCtx(ctx context.Context) domain.Identity {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Identity{}
	}
	return domain.Identity{UserID: userID, Username: ctxutil.UsernameFromCtx(ctx)}
}

// groupRef converts a submitted group choice into a nullable slug.
func groupRef(slug string) *string {
	if slug == "" {
		return nil
	}
	return &slug
}

func (s *Service) publish(ctx context.Context, event string, fn func(context.Context, *domain.Post) error, post *domain.Post) {
	if err := fn(ctx, post); err != nil {
		s.log.WarnContext(ctx, "publish post event",
			slog.String("event", event),
			slog.Int64("post_id", post.ID),
			slog.String("error", err.Error()),
		)
	}
}
