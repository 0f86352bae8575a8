package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"github.com/golang-migrate/migrate/v4"
	mpg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/murkotick/storefront-catalog-service/internal/pkg/config"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/logger"
	"github.com/murkotick/storefront-catalog-service/migrations"
)

// Applies the embedded schema to the configured backend.
//
// Usage (emulator):
//
//	SPANNER_EMULATOR_HOST=localhost:9010 go run ./cmd/migrate -driver spanner
//
// Usage (postgres):
//
//	CATALOG_STORAGE_POSTGRES_HOST=localhost go run ./cmd/migrate -driver postgres up
func main() {
	driver := flag.String("driver", "", "spanner or postgres (defaults to storage.driver)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *driver == "" {
		*driver = cfg.Storage.Driver
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: "console", Output: "stderr"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch *driver {
	case config.DriverSpanner:
		err = migrateSpanner(ctx, cfg.Storage.Spanner.Database, log)
	case config.DriverPostgres:
		cmd := flag.Arg(0)
		if cmd == "" {
			cmd = "up"
		}
		err = migratePostgres(cfg.Storage.Postgres, cmd, log)
	default:
		err = fmt.Errorf("unknown driver %q", *driver)
	}
	if err != nil {
		log.Error("migration failed", zap.String("driver", *driver), zap.Error(err))
		os.Exit(1)
	}
}

func migrateSpanner(ctx context.Context, db string, log *zap.Logger) error {
	stmts, err := migrations.SpannerStatements()
	if err != nil {
		return fmt.Errorf("read DDL: %w", err)
	}
	if len(stmts) == 0 {
		return errors.New("no DDL statements embedded")
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		return fmt.Errorf("UpdateDatabaseDdl: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("UpdateDatabaseDdl wait: %w", err)
	}

	log.Info("applied DDL", zap.Int("statements", len(stmts)), zap.String("database", db))
	return nil
}

func migratePostgres(pg config.PostgresConfig, cmd string, log *zap.Logger) error {
	db, err := sql.Open("postgres", pg.URL())
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	driver, err := mpg.WithInstance(db, &mpg.Config{})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}
	src, err := iofs.New(migrations.Postgres, "postgres")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
	default:
		return fmt.Errorf("unknown command %q (want up, down or version)", cmd)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no migrations to apply")
		err = nil
	}
	if err != nil {
		return fmt.Errorf("migration %s: %w", cmd, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read version: %w", err)
	}
	log.Info("migrations done", zap.String("command", cmd), zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
