package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockCategoryRepository(t *testing.T) (*GormCategoryRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormCategoryRepository(gormDB), mock, mockDB
}

func TestGormCategoryRepository_ExistsByName(t *testing.T) {
	t.Run("matches case-insensitively", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE LOWER\(name\) = \$1`).
			WithArgs("dairy").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByName(context.Background(), "Dairy", uuid.Nil)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("excludes the given category when renaming", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		categoryID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE LOWER\(name\) = \$1 AND id <> \$2`).
			WithArgs("dairy", categoryID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByName(context.Background(), "Dairy", categoryID)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
