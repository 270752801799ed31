package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/zoomtube-backend/internal/data/cache"
	"github.com/yungbote/zoomtube-backend/internal/data/db"
	"github.com/yungbote/zoomtube-backend/internal/data/docstore"
	"github.com/yungbote/zoomtube-backend/internal/http"
	"github.com/yungbote/zoomtube-backend/internal/observability"
	"github.com/yungbote/zoomtube-backend/internal/platform/envutil"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
	"github.com/yungbote/zoomtube-backend/internal/services"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Repos    Repos
	Services Services
	Server   *http.Server

	// closers run in reverse order on Close.
	closers []func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if logMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("Loading configuration...")
	src := envutil.NewSource(log)
	if err := src.LoadFile(os.Getenv("CONFIG_FILE")); err != nil {
		log.Sync()
		return nil, err
	}
	cfg := LoadConfig(src)

	a := &App{Log: log, Cfg: cfg}
	a.closers = append(a.closers, observability.InitOTel(ctx, log, cfg.Otel))

	reposet, err := a.openStore(ctx)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	a.Repos = reposet

	trackCache, err := a.openTrackCache(ctx)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	a.Services = wireServices(log, cfg, reposet, trackCache)

	handlerset := wireHandlers(log, a.Services)
	middleware := wireMiddleware(log, a.Services)
	a.Server = wireServer(log, cfg, handlerset, middleware)
	return a, nil
}

func (a *App) openStore(ctx context.Context) (Repos, error) {
	switch a.Cfg.StoreBackend {
	case StoreMongo:
		client, err := docstore.Connect(ctx, a.Log, a.Cfg.Mongo.URI, a.Cfg.Mongo.Database)
		if err != nil {
			return Repos{}, fmt.Errorf("init mongo: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		if err := client.EnsureIndexes(ctx); err != nil {
			return Repos{}, fmt.Errorf("mongo indexes: %w", err)
		}
		return wireDocRepos(client, a.Log), nil
	case StorePostgres, StoreSQLite:
		var (
			theDB *gorm.DB
			err   error
		)
		if a.Cfg.StoreBackend == StoreSQLite {
			theDB, err = db.NewSQLite(a.Log, a.Cfg.SQLitePath)
		} else {
			theDB, err = db.NewPostgres(a.Log, a.Cfg.Postgres)
		}
		if err != nil {
			return Repos{}, fmt.Errorf("init %s: %w", a.Cfg.StoreBackend, err)
		}
		sqlDB, err := theDB.DB()
		if err != nil {
			return Repos{}, fmt.Errorf("sql handle: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return sqlDB.Close() })
		if err := db.Migrate(theDB); err != nil {
			return Repos{}, fmt.Errorf("%s automigrate: %w", a.Cfg.StoreBackend, err)
		}
		return wireRepos(theDB, a.Log), nil
	default:
		return Repos{}, fmt.Errorf("unknown STORE_BACKEND %q", a.Cfg.StoreBackend)
	}
}

// openTrackCache returns nil when no Redis address is configured.
func (a *App) openTrackCache(ctx context.Context) (services.TrackCache, error) {
	if a.Cfg.Redis.Addr == "" {
		return nil, nil
	}
	rdb, err := cache.Connect(ctx, a.Log, a.Cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}
	a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
	return cache.NewTrackCache(a.Log, rdb, a.Cfg.TrackCacheTTL), nil
}

// Run serves HTTP until Shutdown.
func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port, "store", a.Cfg.StoreBackend)
	return a.Server.Run()
}

func (a *App) Shutdown(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return nil
	}
	return a.Server.Shutdown(ctx)
}

func (a *App) Close(ctx context.Context) error {
	if a == nil {
		return nil
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	if a.Log != nil {
		a.Log.Sync()
	}
	return errors.Join(errs...)
}
