// Package bootstrap initializes the service infrastructure in order:
// logger, database (when the catalog lives in Postgres), catalog, and
// the session store.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alisha/dialect/core/catalog"
	coreconfig "github.com/alisha/dialect/core/config"
	coredatabase "github.com/alisha/dialect/core/database"
	"github.com/alisha/dialect/core/logger"
	"github.com/alisha/dialect/core/session"
)

// Result exposes the infrastructure built by Run. Close releases what was
// opened, in reverse order.
type Result struct {
	Catalog *catalog.Catalog
	Store   session.Store
	DB      *sqlx.DB

	redis *session.RedisStore
}

// Close releases the database pool and the Redis client, if open.
func (r *Result) Close() error {
	var errs []error
	if r.redis != nil {
		errs = append(errs, r.redis.Close())
	}
	if r.DB != nil {
		errs = append(errs, r.DB.Close())
	}
	return errors.Join(errs...)
}

// Run initializes the logger, loads the catalog from its configured
// source, and builds the session store.
func Run(ctx context.Context, cfg *coreconfig.Config) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	if err := logger.Init(cfg); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	// Startup work is not tied to any update, so it gets its own rid.
	ctx = logger.WithRID(ctx, uuid.NewString())

	res := &Result{}

	var source catalog.Source
	switch cfg.Catalog.Source {
	case coreconfig.CatalogSourcePostgres:
		db, err := coredatabase.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: database initialization failed: %w", err)
		}
		res.DB = db
		if err := coredatabase.RunMigrations(cfg.Database); err != nil {
			_ = res.Close()
			return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
		}
		source = catalog.NewPostgresSource(db)
	default:
		source = catalog.NewFileSource(cfg.Catalog.Path)
	}

	cat, err := source.Load(ctx)
	if err != nil {
		_ = res.Close()
		return nil, fmt.Errorf("bootstrap: catalog load failed: %w", err)
	}
	if err := cat.Validate(); err != nil {
		// Malformed entries degrade to an unavailable reply at message
		// time, so startup continues with a warning.
		logger.Warn(ctx, "catalog", "catalog.validate",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
	}
	res.Catalog = cat

	switch cfg.Session.Backend {
	case coreconfig.SessionBackendRedis:
		store, err := session.NewRedisStore(ctx, session.RedisOptions{
			Addr:      cfg.Session.RedisAddr,
			Password:  cfg.Session.RedisPassword,
			DB:        cfg.Session.RedisDB,
			KeyPrefix: cfg.Session.KeyPrefix,
			TTL:       time.Duration(cfg.Session.TTLMinutes) * time.Minute,
		})
		if err != nil {
			_ = res.Close()
			return nil, fmt.Errorf("bootstrap: session store failed: %w", err)
		}
		res.redis = store
		res.Store = store
	default:
		res.Store = session.NewMemoryStore()
	}

	logger.Info(ctx, "bootstrap", "ready",
		slog.String("status", "ok"),
		slog.String("catalog_source", cfg.Catalog.Source),
		slog.String("session_backend", cfg.Session.Backend),
		slog.Int("countries", len(cat.Countries)),
	)

	return res, nil
}
