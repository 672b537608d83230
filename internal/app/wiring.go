package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"

	"github.com/heartmarshall/yatube-backend/internal/adapter/eventbroker"
	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	grouprepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/group"
	postrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/post"
	userrepo "github.com/heartmarshall/yatube-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/yatube-backend/internal/auth"
	"github.com/heartmarshall/yatube-backend/internal/config"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	authsvc "github.com/heartmarshall/yatube-backend/internal/service/auth"
	postsvc "github.com/heartmarshall/yatube-backend/internal/service/post"
	"github.com/heartmarshall/yatube-backend/internal/transport/middleware"
	"github.com/heartmarshall/yatube-backend/internal/transport/rest"
	"github.com/heartmarshall/yatube-backend/internal/transport/web"
)

const metricsNamespace = "yatube"

type postEvents interface {
	PostCreated(ctx context.Context, post *domain.Post) error
	PostUpdated(ctx context.Context, post *domain.Post) error
}

// App holds the long-lived resources of a running server.
type App struct {
	handler http.Handler
	pool    *pgxpool.Pool
	nc      *nats.Conn
	limiter *middleware.RateLimiter
	logger  *slog.Logger
}

// New connects to the database (and NATS when configured), applies
// migrations if enabled and assembles the HTTP handler.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected")

	if !cfg.Database.SkipMigrations {
		if err := postgres.MigratePool(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}

	a := &App{pool: pool, logger: logger}

	var events postEvents = eventbroker.Noop{}
	if cfg.Events.Enabled() {
		nc, err := eventbroker.Connect(cfg.Events.NatsURL)
		if err != nil {
			pool.Close()
			return nil, err
		}
		a.nc = nc
		events = eventbroker.NewPublisher(nc, cfg.Events.SubjectPrefix)
		logger.Info("event publisher connected", slog.String("subject_prefix", cfg.Events.SubjectPrefix))
	}

	users := userrepo.New(pool)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	accounts := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	posts := postsvc.NewService(logger,
		postrepo.New(pool),
		grouprepo.New(pool),
		users,
		events,
		postgres.NewTxManager(pool),
		cfg.Posts.PageSize,
	)

	renderer, err := web.NewHTMLRenderer()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load templates: %w", err)
	}

	checks := []rest.Check{{Name: "database", Ping: pool.Ping}}
	if a.nc != nil {
		checks = append(checks, rest.Check{Name: "nats", Ping: natsPing(a.nc), Optional: true})
	}

	a.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupEvery)
	a.handler = NewRouter(RouterDeps{
		Config:   cfg,
		Logger:   logger,
		Pages:    web.NewHandler(posts, accounts, renderer, cfg.Auth, logger),
		Sessions: accounts,
		Health:   rest.NewHealthHandler(BuildVersion(), checks...),
		Metrics:  middleware.NewMetrics(metricsNamespace),
		Limiter:  a.limiter,
	})

	return a, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close releases every resource held by the app. NATS is drained so
// buffered events are flushed before the connection closes.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.nc != nil {
		if err := a.nc.Drain(); err != nil {
			a.logger.Warn("drain nats connection", slog.String("error", err.Error()))
		}
	}
	a.pool.Close()
}

func natsPing(nc *nats.Conn) func(context.Context) error {
	return func(context.Context) error {
		if !nc.IsConnected() {
			return errors.New("nats: " + nc.Status().String())
		}
		return nil
	}
}
