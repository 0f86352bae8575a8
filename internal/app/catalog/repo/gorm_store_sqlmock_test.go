package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
)

func newMockGormStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return NewGormStore(db), mock
}

func TestGormStore_RunInTx_RollsBackOnStorageFailure(t *testing.T) {
	s, mock := newMockGormStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "items" WHERE store_id = \$1`).
		WithArgs("store-a").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "categories" WHERE store_id = \$1`).
		WithArgs("store-a").
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	err := s.RunInTx(context.Background(), func(ctx context.Context, tx contracts.CatalogTx) error {
		n, err := tx.DeleteItemsByStore(ctx, "store-a")
		if err != nil {
			return err
		}
		assert.Equal(t, int64(3), n)
		_, err = tx.DeleteCategoriesByStore(ctx, "store-a")
		return err
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_FindStoreOwnedBy_NotFound(t *testing.T) {
	s, mock := newMockGormStore(t)

	mock.ExpectQuery(`SELECT \* FROM "stores" WHERE store_id = \$1 AND owner_id = \$2 LIMIT .*`).
		WithArgs("store-a", "intruder", 1).
		WillReturnRows(sqlmock.NewRows([]string{"store_id", "owner_id", "name", "slug", "created_at"}))

	_, err := s.FindStoreOwnedBy(context.Background(), "store-a", "intruder")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
