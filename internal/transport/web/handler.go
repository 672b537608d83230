// Package web serves the server-rendered HTML pages.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/yatube-backend/internal/config"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/internal/service/auth"
	"github.com/heartmarshall/yatube-backend/internal/service/post"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// maxFormBytes bounds a submitted form body.
const maxFormBytes = 1 << 20

// postService defines the post operations needed by Handler.
type postService interface {
	ListAll(ctx context.Context, page string) (*post.Feed, error)
	ListByGroup(ctx context.Context, slug, page string) (*post.GroupFeed, error)
	ListByAuthor(ctx context.Context, username, page string) (*post.ProfileFeed, error)
	GetDetail(ctx context.Context, id int64) (*post.PostDetail, error)
	NewPostForm(ctx context.Context) (*post.Form, error)
	CreatePost(ctx context.Context, input post.PostInput) (*domain.Post, *post.Form, error)
	EditPostForm(ctx context.Context, id int64) (*post.Form, *domain.Post, error)
	UpdatePost(ctx context.Context, id int64, input post.PostInput) (*domain.Post, *post.Form, error)
}

// authService defines the account operations needed by Handler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.Session, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.Session, error)
}

// Handler serves the HTML pages.
type Handler struct {
	posts    postService
	accounts authService
	render   Renderer
	cfg      config.AuthConfig
	log      *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(posts postService, accounts authService, render Renderer, cfg config.AuthConfig, logger *slog.Logger) *Handler {
	return &Handler{
		posts:    posts,
		accounts: accounts,
		render:   render,
		cfg:      cfg,
		log:      logger.With("handler", "web"),
	}
}

// base collects the per-request data every page needs.
func base(r *http.Request) Base {
	b := Base{Path: r.URL.Path}
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		b.User = domain.Identity{UserID: id, Username: ctxutil.UsernameFromCtx(r.Context())}
	}
	return b
}

// postID parses the {id} path value. A non-integer id is reported as not found.
func postID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := h.render.Render(w, status, name, data); err != nil {
		h.log.ErrorContext(r.Context(), "render page",
			slog.String("template", name),
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// handleError maps service errors to responses. Validation errors never reach
// here; handlers re-render their form instead.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.notFound(w, r)
	case errors.Is(err, domain.ErrUnauthorized):
		http.Redirect(w, r, h.cfg.LoginRedirect(r.URL.RequestURI()), http.StatusFound)
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		h.page(w, r, http.StatusInternalServerError, TmplError, ErrorView{
			Base:    base(r),
			Status:  http.StatusInternalServerError,
			Message: "Something went wrong. Please try again later.",
		})
	}
}

// NotFound renders the 404 page. It is also the catch-all route.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusNotFound, TmplError, ErrorView{
		Base:    base(r),
		Status:  http.StatusNotFound,
		Message: "The page you requested does not exist.",
	})
}
