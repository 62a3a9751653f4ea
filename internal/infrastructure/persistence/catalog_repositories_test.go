package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
)

func newMockMethodRepository(t *testing.T) (*GormPaymentMethodRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormPaymentMethodRepository(gormDB), mock, mockDB
}

func methodColumns() []string {
	return []string{"id", "created_at", "updated_at", "name", "category"}
}

func TestGormPaymentMethodRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("locks the method row", func(t *testing.T) {
		repo, mock, mockDB := newMockMethodRepository(t)
		defer mockDB.Close()

		methodID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(methodColumns()).
			AddRow(methodID, now, now, "Cash", ledger.MethodCategoryCash)

		mock.ExpectQuery(`SELECT \* FROM "payment_methods" WHERE id = \$1 ORDER BY "payment_methods"\."id" LIMIT \$2 FOR UPDATE`).
			WithArgs(methodID, 1).
			WillReturnRows(rows)

		method, err := repo.FindByIDForUpdate(context.Background(), methodID)

		assert.NoError(t, err)
		require.NotNil(t, method)
		assert.Equal(t, methodID, method.ID)
		assert.Equal(t, ledger.MethodCategoryCash, method.Category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for unknown method", func(t *testing.T) {
		repo, mock, mockDB := newMockMethodRepository(t)
		defer mockDB.Close()

		methodID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "payment_methods" WHERE id = \$1`).
			WithArgs(methodID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		method, err := repo.FindByIDForUpdate(context.Background(), methodID)

		assert.Nil(t, method)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentMethodRepository_ListAllForUpdate(t *testing.T) {
	t.Run("locks every method row in id order", func(t *testing.T) {
		repo, mock, mockDB := newMockMethodRepository(t)
		defer mockDB.Close()

		now := time.Now()
		firstID := uuid.New()
		secondID := uuid.New()

		rows := sqlmock.NewRows(methodColumns()).
			AddRow(firstID, now, now, "Cash", ledger.MethodCategoryCash).
			AddRow(secondID, now, now, "Card", ledger.MethodCategoryBank)

		mock.ExpectQuery(`SELECT \* FROM "payment_methods" ORDER BY id ASC FOR UPDATE`).
			WillReturnRows(rows)

		methods, err := repo.ListAllForUpdate(context.Background())

		assert.NoError(t, err)
		require.Len(t, methods, 2)
		assert.Equal(t, firstID, methods[0].ID)
		assert.Equal(t, secondID, methods[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
