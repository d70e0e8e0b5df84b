// Package app wires the dashboard backend together.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"evcharge-admin-backend/config"
	"evcharge-admin-backend/internal/analytics"
	"evcharge-admin-backend/internal/api"
	"evcharge-admin-backend/internal/catalog"
	"evcharge-admin-backend/internal/command"
	"evcharge-admin-backend/internal/db"
	"evcharge-admin-backend/internal/detail"
	"evcharge-admin-backend/internal/mw"
	"evcharge-admin-backend/internal/notification"
	"evcharge-admin-backend/internal/refresh"
	"evcharge-admin-backend/internal/seed"
	"evcharge-admin-backend/internal/settings"
	"evcharge-admin-backend/internal/store"
)

const shutdownTimeout = 5 * time.Second

// App holds the running service.
type App struct {
	Router *gin.Engine
	Store  store.Store

	server *http.Server
	gormDB *gorm.DB
	redis  *redis.Client
	pool   *notification.WorkerPool
	log    *zap.Logger
}

// New builds the application graph from cfg.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	gormDB, err := db.Init(&cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if cfg.Database.Seed {
		if err := Seed(ctx, gormDB, log); err != nil {
			return nil, err
		}
	}
	return Build(cfg, gormDB, log)
}

// Build wires the services on an open database.
func Build(cfg *config.Config, gormDB *gorm.DB, log *zap.Logger) (*App, error) {
	a := &App{gormDB: gormDB, log: log}
	a.Store = store.NewGormStore(gormDB)

	sel, err := a.selectionStore(cfg.Selection)
	if err != nil {
		return nil, err
	}

	feed := notification.NewFeed(cfg.Notifications.TTL)
	cache := mw.NewResponseCache(cfg.Server.CacheTTL)
	cat := catalog.New(a.Store, sel)

	var push *webpush.Options
	if cfg.Push.Enabled() {
		push = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		a.pool = notification.NewWorkerPool(cfg.WorkerPool.Size, a.Store, push, log)
		feed.OnPublish(a.pool.Dispatch)
	} else {
		log.Info("push notifications disabled, no VAPID keys configured")
	}

	deps := api.Deps{
		Store:          a.Store,
		Catalog:        cat,
		Dispatcher:     command.NewDispatcher(cat, command.NewNotifyHandler(feed, log)),
		Feed:           feed,
		Refresher:      refresh.New(cfg.Refresh.Delay, cat, cache, feed, api.CachePrefixes(cat), log),
		Analytics:      analytics.NewService(cfg.Server.CacheTTL),
		Settings:       settings.NewService(cfg.Refresh.Delay, feed),
		WebPush:        push,
		Log:            log,
		SecureCookies:  cfg.Server.SecureCookies,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
	a.Router = api.NewRouter(deps, cfg.Server, cache)
	a.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a, nil
}

func (a *App) selectionStore(cfg config.SelectionConfig) (detail.SelectionStore, error) {
	switch cfg.Backend {
	case "memory":
		return detail.NewMemoryStore(cfg.TTL), nil
	case "redis":
		client, err := detail.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect selection store: %w", err)
		}
		a.redis = client
		return detail.NewRedisStore(client, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown selection backend %q", cfg.Backend)
	}
}

// Seed loads the bundled fixtures into gormDB.
func Seed(ctx context.Context, gormDB *gorm.DB, log *zap.Logger) error {
	f, err := seed.Default()
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}
	if err := seed.Apply(ctx, gormDB, f, log); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	if a.pool != nil {
		a.pool.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("HTTP server starting", zap.String("addr", a.server.Addr))
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received, stopping services")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown: %w", err)
		}
		a.log.Info("server gracefully stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Close releases the database and Redis connections.
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("failed to close redis", zap.Error(err))
		}
	}
	if sqlDB, err := a.gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Warn("failed to close database", zap.Error(err))
		}
	}
}
