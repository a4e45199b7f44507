package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres"
	itemrepo "github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres/item"
	libraryrepo "github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres/library"
	"github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres/studylog"
	"github.com/heartmarshall/vocamemo-backend/internal/auth"
	"github.com/heartmarshall/vocamemo-backend/internal/config"
	"github.com/heartmarshall/vocamemo-backend/internal/service/library"
	"github.com/heartmarshall/vocamemo-backend/internal/service/stats"
	"github.com/heartmarshall/vocamemo-backend/internal/service/study"
	"github.com/heartmarshall/vocamemo-backend/internal/service/user"
	"github.com/heartmarshall/vocamemo-backend/internal/transport/middleware"
	"github.com/heartmarshall/vocamemo-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// remote store, serves HTTP until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	srv, err := NewServer(cfg, logger, pool)
	if err != nil {
		return err
	}
	defer srv.Close()

	return srv.ListenAndServe(ctx)
}

// Server is the assembled HTTP application.
type Server struct {
	http    *http.Server
	study   *study.Service
	limiter *middleware.RateLimiter
	log     *slog.Logger
	timeout time.Duration
}

// NewServer wires repositories, services and handlers over pool.
func NewServer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*Server, error) {
	loc, err := time.LoadLocation(cfg.Study.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	txm := postgres.NewTxManager(pool)

	// Repositories.
	libraryRepo := libraryrepo.New(pool)
	sectionRepo := libraryrepo.NewSectionRepo(pool)
	itemRepo := itemrepo.New(pool)
	studyLogRepo := studylog.New(pool)
	profileRepo := profile.New(pool)

	// Services.
	librarySvc := library.NewService(logger, libraryRepo, sectionRepo, itemRepo, txm)
	studySvc := study.NewService(logger, libraryRepo, itemRepo, studyLogRepo, study.Options{
		Timezone:           loc,
		MaxSessionItems:    cfg.Study.MaxSessionItems,
		StatusWriteTimeout: cfg.Study.StatusWriteTimeout,
		SessionTTL:         cfg.Study.SessionTTL,
	})
	statsSvc := stats.NewService(logger, studyLogRepo, itemRepo, stats.Options{
		Timezone:   loc,
		RecentDays: cfg.Study.RecentDays,
	})
	userSvc := user.NewService(logger, profileRepo)

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(time.Minute)

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, studySvc, BuildVersion()),
		Library: rest.NewLibraryHandler(librarySvc, logger),
		Study:   rest.NewStudyHandler(studySvc, logger),
		Stats:   rest.NewStatsHandler(statsSvc, logger),
		Profile: rest.NewProfileHandler(userSvc, logger),
	},
		middleware.Auth(jwtMgr, logger),
		limiter.Limit(cfg.Server.RateLimitPerMin),
	)
	router.Use(middleware.Logger(logger))

	// CORS sits outside the router so preflights reach it even though no
	// route accepts OPTIONS.
	var handler http.Handler = router
	handler = middleware.CORS(cfg.CORS)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return &Server{
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
		},
		study:   studySvc,
		limiter: limiter,
		log:     logger,
		timeout: cfg.Server.ShutdownTimeout,
	}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe serves until ctx is cancelled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down", slog.Duration("timeout", s.timeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// Close stops background work: the rate limiter sweeper and in-flight
// item status writes.
func (s *Server) Close() {
	s.limiter.Stop()
	s.study.Wait()
}
