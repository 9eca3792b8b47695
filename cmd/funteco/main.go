// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/olegiv/funteco-cms/internal/admin"
	"github.com/olegiv/funteco-cms/internal/cache"
	"github.com/olegiv/funteco-cms/internal/config"
	"github.com/olegiv/funteco-cms/internal/content"
	"github.com/olegiv/funteco-cms/internal/demo"
	"github.com/olegiv/funteco-cms/internal/handler"
	"github.com/olegiv/funteco-cms/internal/handler/api"
	"github.com/olegiv/funteco-cms/internal/hooks"
	"github.com/olegiv/funteco-cms/internal/logging"
	"github.com/olegiv/funteco-cms/internal/middleware"
	"github.com/olegiv/funteco-cms/internal/model"
	"github.com/olegiv/funteco-cms/internal/remote"
	"github.com/olegiv/funteco-cms/internal/render"
	"github.com/olegiv/funteco-cms/internal/scheduler"
	"github.com/olegiv/funteco-cms/internal/service"
	"github.com/olegiv/funteco-cms/internal/session"
	"github.com/olegiv/funteco-cms/internal/storage"
	"github.com/olegiv/funteco-cms/internal/store"
	"github.com/olegiv/funteco-cms/internal/version"
	"github.com/olegiv/funteco-cms/web"
)

const loginCleanupInterval = 5 * time.Minute

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Funteco CMS - content core of the Funteco site\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FUNTECO_SESSION_SECRET    Session secret (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FUNTECO_DB_PATH           SQLite database path (default: ./data/funteco.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FUNTECO_STORAGE           Document storage: sqlite|redis|memory (default: sqlite)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FUNTECO_REDIS_URL         Redis URL for storage and sessions (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FUNTECO_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FUNTECO_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FUNTECO_ADMIN_EMAIL       Collaborator panel login (default: admin@funteco.org)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FUNTECO_ADMIN_PASSWORD    Collaborator panel password or argon2id hash\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FUNTECO_STRAPI_URL        Remote CMS base URL (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FUNTECO_DEMO_MODE         Reset seeded content every 24 hours (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("funteco %s\n", version.Get())
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	info := version.Get()

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(textHandler))
	slog.Info("starting funteco", "version", info.Version, "commit", info.GitCommit, "env", cfg.Env)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("closing database", "error", err)
		}
	}()
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// WARN and above now land in the event log too.
	logger := slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checks := map[string]handler.Pinger{"database": db}

	st, redisClient, err := openStorage(cfg, db)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		checks["storage"] = handler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	slog.Info("document storage ready", "backend", cfg.Storage)

	sessionCache, cacheInfo, err := cache.NewCache(cache.Config{
		RedisURL:         cfg.RedisURL,
		Prefix:           cfg.RedisPrefix + "session:",
		DefaultTTL:       cfg.SessionTTL,
		FallbackToMemory: true,
	}, logger)
	if err != nil {
		return fmt.Errorf("creating session cache: %w", err)
	}
	defer func() { _ = sessionCache.Close() }()
	if rc, ok := sessionCache.(*cache.RedisCache); ok {
		checks["sessions"] = handler.PingerFunc(rc.Ping)
	}
	slog.Info("session cache ready", "backend", cacheInfo.Backend, "fallback", cacheInfo.Fallback)

	sessions := session.NewStore(sessionCache, session.WithTTL(cfg.SessionTTL, cfg.SessionTTLExtended))
	authenticator := session.NewAuthenticator(session.Credentials{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}, sessions)

	adm, err := admin.Open(ctx, st, admin.WithLogger(logger), admin.WithHooks(hooks.NewRegistry(logger)))
	if err != nil {
		return fmt.Errorf("opening admin store: %w", err)
	}
	cms, err := content.Open(ctx, st, adm, content.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("opening content store: %w", err)
	}

	var cmsClient *remote.Client
	if cfg.RemoteEnabled() {
		cmsClient, err = remote.NewClient(cfg.StrapiURL, cfg.StrapiToken, cfg.StrapiTimeout)
		if err != nil {
			return fmt.Errorf("configuring remote cms: %w", err)
		}
		slog.Info("remote cms enabled", "url", cmsClient.BaseURL())
	}
	site := remote.NewSource(cmsClient, remote.WithLogger(logger), remote.WithLocale(cfg.Locale))

	eventService := service.NewEventService(db, logger)

	sched := scheduler.New(logger)
	if err := sched.Add(scheduler.RetentionJob(eventService, cfg.EventRetentionDays, logger)); err != nil {
		return fmt.Errorf("registering retention job: %w", err)
	}
	if cfg.DemoMode {
		if reset, err := demo.ResetIfNeeded(ctx, st, adm, cms); err != nil {
			slog.Error("demo reset failed", "error", err)
		} else if reset {
			slog.Info("demo content restored")
		}
		if err := sched.Add(scheduler.DemoResetJob(st, adm, cms)); err != nil {
			return fmt.Errorf("registering demo reset job: %w", err)
		}
	}
	sched.Start()
	defer sched.Stop()

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	go loginProtection.Run(ctx, loginCleanupInterval)

	authHandler := handler.NewAuthHandler(handler.AuthConfig{
		Renderer:        renderer,
		Authenticator:   authenticator,
		EventService:    eventService,
		LoginProtection: loginProtection,
		SecureCookies:   cfg.IsProduction(),
		Logger:          logger,
	})
	dashboardHandler := handler.NewDashboardHandler(renderer, cms.Manager, logger)
	healthHandler := handler.NewHealthHandler(info.Version, checks)
	apiHandler := api.NewHandler(api.Config{
		Admin:   adm,
		Content: cms,
		Site:    site,
		Events:  eventService,
		Jobs:    sched.Registry(),
		Logger:  logger,
		Version: info.Version,
	})

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment(), cfg.ServerPort))
	publicRateLimiter := middleware.NewRateLimiter(10, 20)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))

	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(publicRateLimiter.Middleware())
			apiHandler.RegisterPublic(r)
		})
		r.Route("/admin", func(r chi.Router) {
			r.Use(csrfMiddleware)
			r.Use(middleware.RequireSessionAPI(sessions))
			apiHandler.RegisterAdmin(r)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get("/login", authHandler.LoginForm)
		r.With(loginProtection.Middleware()).Post("/sessions", authHandler.CreateSession)
		r.Post("/logout", authHandler.Logout)
		r.With(middleware.RequireSession(sessions)).Get("/", dashboardHandler.Dashboard)
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// openStorage selects the backend of the admin documents. The Redis
// client is returned so the caller can probe and close it.
func openStorage(cfg *config.Config, db *sql.DB) (storage.Storage, *redis.Client, error) {
	switch cfg.Storage {
	case config.StorageRedis:
		client, err := cache.NewRedisClient(cache.RedisCacheOptions{
			URL:            cfg.RedisURL,
			ConnectTimeout: 5 * time.Second,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis storage: %w", err)
		}
		return storage.NewRedis(client, cfg.RedisPrefix), client, nil
	case config.StorageMemory:
		slog.Warn("memory storage selected, admin changes are lost on restart", "category", model.EventCategorySystem)
		return storage.NewMemory(), nil, nil
	default:
		return storage.NewSQL(db), nil, nil
	}
}
