package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/farmstore/backend/internal/domain/inventory"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockBatchRepository creates a GormBatchRepository with a mocked SQL connection
func newMockBatchRepository(t *testing.T) (*GormBatchRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormBatchRepository(gormDB), mock, mockDB
}

func batchColumns() []string {
	return []string{"id", "created_at", "updated_at", "product_id", "quantity", "produced_at", "expires_at"}
}

func TestGormBatchRepository_FindByID(t *testing.T) {
	t.Run("finds existing batch", func(t *testing.T) {
		repo, mock, mockDB := newMockBatchRepository(t)
		defer mockDB.Close()

		batchID := uuid.New()
		productID := uuid.New()
		producedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		now := time.Now()

		rows := sqlmock.NewRows(batchColumns()).AddRow(
			batchID, now, now, productID,
			decimal.RequireFromString("2.5"), producedAt, producedAt.AddDate(0, 0, 7),
		)

		mock.ExpectQuery(`SELECT \* FROM "batches" WHERE id = \$1`).
			WithArgs(batchID, 1).
			WillReturnRows(rows)

		batch, err := repo.FindByID(context.Background(), batchID)

		assert.NoError(t, err)
		assert.NotNil(t, batch)
		assert.Equal(t, batchID, batch.ID)
		assert.Equal(t, productID, batch.ProductID)
		assert.True(t, batch.Quantity.Equal(decimal.RequireFromString("2.5")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing batch", func(t *testing.T) {
		repo, mock, mockDB := newMockBatchRepository(t)
		defer mockDB.Close()

		batchID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "batches" WHERE id = \$1`).
			WithArgs(batchID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		batch, err := repo.FindByID(context.Background(), batchID)

		assert.Error(t, err)
		assert.Nil(t, batch)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBatchRepository_FindSellableForUpdate(t *testing.T) {
	t.Run("locks rows and skips expired batches", func(t *testing.T) {
		repo, mock, mockDB := newMockBatchRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		today := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
		older := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
		now := time.Now()

		rows := sqlmock.NewRows(batchColumns()).
			AddRow(uuid.New(), now, now, productID, decimal.NewFromInt(2), older, older.AddDate(0, 0, 14)).
			AddRow(uuid.New(), now, now, productID, decimal.NewFromInt(5), newer, newer.AddDate(0, 0, 14))

		mock.ExpectQuery(`SELECT \* FROM "batches" WHERE product_id = \$1 AND expires_at >= \$2 ORDER BY produced_at ASC, created_at ASC, id ASC FOR UPDATE`).
			WithArgs(productID, inventory.DateOf(today)).
			WillReturnRows(rows)

		batches, err := repo.FindSellableForUpdate(context.Background(), productID, today)

		assert.NoError(t, err)
		require.Len(t, batches, 2)
		assert.Equal(t, older, batches[0].ProducedAt)
		assert.Equal(t, newer, batches[1].ProducedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBatchRepository_SumQuantityByProduct(t *testing.T) {
	t.Run("sums remaining quantity", func(t *testing.T) {
		repo, mock, mockDB := newMockBatchRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity\), 0\) FROM "batches" WHERE product_id = \$1`).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("7.500"))

		sum, err := repo.SumQuantityByProduct(context.Background(), productID)

		assert.NoError(t, err)
		assert.True(t, sum.Equal(decimal.RequireFromString("7.5")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns zero when the product has no batches", func(t *testing.T) {
		repo, mock, mockDB := newMockBatchRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity\), 0\) FROM "batches" WHERE product_id = \$1`).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))

		sum, err := repo.SumQuantityByProduct(context.Background(), productID)

		assert.NoError(t, err)
		assert.True(t, sum.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBatchRepository_Delete(t *testing.T) {
	t.Run("deletes existing batch", func(t *testing.T) {
		repo, mock, mockDB := newMockBatchRepository(t)
		defer mockDB.Close()

		batchID := uuid.New()

		mock.ExpectExec(`DELETE FROM "batches" WHERE id = \$1`).
			WithArgs(batchID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), batchID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockBatchRepository(t)
		defer mockDB.Close()

		batchID := uuid.New()

		mock.ExpectExec(`DELETE FROM "batches" WHERE id = \$1`).
			WithArgs(batchID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), batchID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
