package e2e

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instancepb "cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/repo"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/templates"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/apply_template"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/create_category"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/create_item"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/delete_category"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/update_item"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/migrations"
)

var (
	spClient *spanner.Client
	store    *repo.SpannerStore
	clk      *clock.FakeClock

	applyUC      *apply_template.Interactor
	createCatUC  *create_category.Interactor
	createItemUC *create_item.Interactor
	deleteCatUC  *delete_category.Interactor
	updateItemUC *update_item.Interactor

	dbName string
)

func TestMain(m *testing.M) {
	// Without an emulator every test skips.
	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		os.Exit(m.Run())
	}

	// Keep time in UTC everywhere.
	now := time.Now().UTC().Truncate(time.Second)
	clk = clock.NewFake(now)

	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	projectID := env("SPANNER_PROJECT_ID", "test-project")
	instanceID := env("SPANNER_INSTANCE_ID", "emulator-instance")
	// Use a unique database per "go test" run to avoid flakiness and id collisions.
	databaseID := fmt.Sprintf("e2e_%s", strings.ReplaceAll(uuid.New().String(), "-", ""))[:30]

	parent := fmt.Sprintf("projects/%s", projectID)
	instName := fmt.Sprintf("%s/instances/%s", parent, instanceID)
	dbName = fmt.Sprintf("%s/databases/%s", instName, databaseID)

	instAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		panic(fmt.Sprintf("instance admin client: %v", err))
	}
	defer instAdmin.Close()

	dbAdmin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		panic(fmt.Sprintf("database admin client: %v", err))
	}
	defer dbAdmin.Close()

	// Ensure instance exists.
	ensureInstance(ctx, instAdmin, parent, instName, instanceID)

	// Create database with the embedded schema.
	stmts, err := migrations.SpannerStatements()
	if err != nil {
		panic(fmt.Sprintf("read DDL: %v", err))
	}
	op, err := dbAdmin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          instName,
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", databaseID),
		ExtraStatements: stmts,
	})
	if err != nil {
		panic(fmt.Sprintf("CreateDatabase: %v", err))
	}
	if _, err := op.Wait(ctx); err != nil {
		panic(fmt.Sprintf("CreateDatabase wait: %v", err))
	}

	// Data client.
	spClient, err = spanner.NewClient(ctx, dbName)
	if err != nil {
		panic(fmt.Sprintf("spanner.NewClient: %v", err))
	}

	// Wire dependencies.
	store = repo.NewSpannerStore(spClient)
	applyUC = apply_template.NewInteractor(store, templates.Builtin(), clk, zap.NewNop(), nil, 20*time.Second)
	createCatUC = create_category.NewInteractor(store, clk, nil)
	createItemUC = create_item.NewInteractor(store, clk, nil)
	deleteCatUC = delete_category.NewInteractor(store, clk, nil)
	updateItemUC = update_item.NewInteractor(store, clk, nil)

	code := m.Run()

	spClient.Close()

	// Best-effort cleanup (emulator only).
	ctx2, cancel2 := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel2()
	_ = deleteDatabase(ctx2, dbAdmin, dbName)

	os.Exit(code)
}

func ensureInstance(ctx context.Context, admin *instance.InstanceAdminClient, parent, instName, instanceID string) {
	_, err := admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: instName})
	if err == nil {
		return
	}
	if status.Code(err) != codes.NotFound {
		panic(fmt.Sprintf("GetInstance: %v", err))
	}

	// Create instance for emulator.
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     parent,
		InstanceId: instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("%s/instanceConfigs/emulator-config", parent),
			DisplayName: "E2E Test Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			panic(fmt.Sprintf("CreateInstance: %v", err))
		}
		return
	}
	if _, err := op.Wait(ctx); err != nil {
		panic(fmt.Sprintf("CreateInstance wait: %v", err))
	}
}

func deleteDatabase(ctx context.Context, admin *database.DatabaseAdminClient, db string) error {
	err := admin.DropDatabase(ctx, &databasepb.DropDatabaseRequest{Database: db})
	return err
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEmulator(t *testing.T) {
	t.Helper()
	if spClient == nil {
		t.Skip("SPANNER_EMULATOR_HOST not set (e.g. localhost:9010)")
	}
}
