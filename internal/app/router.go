package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/yatube-backend/internal/config"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/internal/transport/middleware"
	"github.com/heartmarshall/yatube-backend/internal/transport/rest"
	"github.com/heartmarshall/yatube-backend/internal/transport/web"
)

type sessionValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Identity, error)
}

// RouterDeps are the collaborators NewRouter mounts.
type RouterDeps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Pages    *web.Handler
	Sessions sessionValidator
	Health   *rest.HealthHandler
	Metrics  *middleware.Metrics
	Limiter  *middleware.RateLimiter
}

// NewRouter mounts the pages, probes and metrics on one ServeMux and wraps
// it in the global middleware stack. Metrics sits innermost so it sees the
// pattern the mux matched.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	d.Pages.Routes(mux, d.Limiter.Limit(d.Config.RateLimit.LoginPerMinute))

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.Handle("GET /metrics", d.Metrics.Handler())

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.Config.CORS),
		middleware.SameOrigin(),
		middleware.Session(d.Sessions, d.Config.Auth.CookieName),
		d.Metrics.Middleware(),
	)(mux)
}
