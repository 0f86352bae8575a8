package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/queries/list_items"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/queries/list_templates"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/repo"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/templates"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/apply_template"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/create_category"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/create_item"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/delete_category"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/delete_item"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/update_category"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/update_item"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/config"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/logger"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/metrics"
	httpcatalog "github.com/murkotick/storefront-catalog-service/internal/transport/http/catalog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	clk := clock.RealClock{}
	m := metrics.New()
	catalog := templates.Builtin()

	// CQRS wiring
	cmds := httpcatalog.Commands{
		ApplyTemplate:  apply_template.NewInteractor(store, catalog, clk, log, m, cfg.Provisioning.Timeout),
		CreateCategory: create_category.NewInteractor(store, clk, m),
		UpdateCategory: update_category.NewInteractor(store, clk, m),
		DeleteCategory: delete_category.NewInteractor(store, clk, m),
		CreateItem:     create_item.NewInteractor(store, clk, m),
		UpdateItem:     update_item.NewInteractor(store, clk, m),
		DeleteItem:     delete_item.NewInteractor(store, clk, m),
	}
	qrys := httpcatalog.Queries{
		ListTemplates:  list_templates.NewHandler(catalog),
		ListCategories: list_categories.NewHandler(store),
		ListItems:      list_items.NewHandler(store),
	}
	h := httpcatalog.NewHandler(cmds, qrys, store)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.Recovery(log), logger.GinMiddleware(log), m.GinMiddleware())
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(m.Handler()))
	h.Register(r)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTP.Addr), zap.String("driver", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http serve: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed, closing", zap.Error(err))
		_ = srv.Close()
	}

	log.Info("server stopped")
	return nil
}

// openStore connects the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (contracts.CatalogStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverSpanner:
		client, err := spanner.NewClient(ctx, cfg.Storage.Spanner.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("spanner.NewClient: %w", err)
		}
		return repo.NewSpannerStore(client), client.Close, nil

	case config.DriverPostgres:
		pg := cfg.Storage.Postgres
		db, err := gorm.Open(postgres.Open(pg.DSN()), &gorm.Config{
			TranslateError: true,
			Logger:         logger.NewGormLogger(log, logger.GormLevel(cfg.Log.GormLevel), 200*time.Millisecond),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("postgres pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(pg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(pg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(pg.ConnMaxLifetime)
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		return repo.NewGormStore(db), func() { _ = sqlDB.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
