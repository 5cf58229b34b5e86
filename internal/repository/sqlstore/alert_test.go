package sqlstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/beverage_stock/internal/domain"
)

func TestAlertRepository_ReplaceForProduct(t *testing.T) {
	db, mock := newMockDB(t, "postgres")
	repo := NewAlertRepository(db)
	detected := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	alerts := []domain.StockAlert{
		{ProductID: "limca", ProductName: "Limca", Volume: "200ml", Level: domain.StockCritical, CurrentSets: 0, Threshold: 6, DetectedAt: detected},
		{ProductID: "limca", ProductName: "Limca", Volume: "750ml", Level: domain.StockLow, CurrentSets: 3, Threshold: 4, DetectedAt: detected},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM stock_alerts WHERE product_id = \$1`).
		WithArgs("limca").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO stock_alerts`).
		WithArgs("limca", "Limca", "200ml", domain.StockCritical, 0, 6, detected).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO stock_alerts`).
		WithArgs("limca", "Limca", "750ml", domain.StockLow, 3, 4, detected).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceForProduct(context.Background(), "limca", alerts)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_ReplaceForProduct_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t, "postgres")
	repo := NewAlertRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM stock_alerts`).
		WithArgs("limca").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO stock_alerts`).
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.ReplaceForProduct(context.Background(), "limca", []domain.StockAlert{{ProductID: "limca", Volume: "200ml", Level: domain.StockLow}})

	assert.ErrorContains(t, err, "constraint failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_SQLite(t *testing.T) {
	repo := NewAlertRepository(newSQLiteDB(t))
	ctx := context.Background()
	detected := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, repo.ReplaceForProduct(ctx, "sprite", []domain.StockAlert{
		{ProductID: "sprite", ProductName: "Sprite", Volume: "750ml", Level: domain.StockLow, CurrentSets: 5, Threshold: 8, DetectedAt: detected},
		{ProductID: "sprite", ProductName: "Sprite", Volume: "2.25L", Level: domain.StockCritical, CurrentSets: 0, Threshold: 4, DetectedAt: detected},
	}))
	require.NoError(t, repo.ReplaceForProduct(ctx, "fanta", []domain.StockAlert{
		{ProductID: "fanta", ProductName: "Fanta", Volume: "200ml", Level: domain.StockLow, CurrentSets: 2, Threshold: 10, DetectedAt: detected},
	}))

	alerts, err := repo.ListByProduct(ctx, "sprite")
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "2.25L", alerts[0].Volume)
	assert.Equal(t, domain.StockCritical, alerts[0].Level)
	assert.True(t, detected.Equal(alerts[0].DetectedAt))

	require.NoError(t, repo.ReplaceForProduct(ctx, "sprite", nil))

	alerts, err = repo.ListByProduct(ctx, "sprite")
	require.NoError(t, err)
	assert.Empty(t, alerts)

	alerts, err = repo.ListByProduct(ctx, "fanta")
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestAlertRepository_List_SQLite(t *testing.T) {
	repo := NewAlertRepository(newSQLiteDB(t))
	ctx := context.Background()
	detected := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	alerts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.NotNil(t, alerts)

	require.NoError(t, repo.ReplaceForProduct(ctx, "fanta", []domain.StockAlert{
		{ProductID: "fanta", ProductName: "Fanta", Volume: "200ml", Level: domain.StockLow, CurrentSets: 2, Threshold: 10, DetectedAt: detected},
	}))
	require.NoError(t, repo.ReplaceForProduct(ctx, "sprite", []domain.StockAlert{
		{ProductID: "sprite", ProductName: "Sprite", Volume: "750ml", Level: domain.StockLow, CurrentSets: 5, Threshold: 8, DetectedAt: detected},
		{ProductID: "sprite", ProductName: "Sprite", Volume: "2.25L", Level: domain.StockCritical, CurrentSets: 0, Threshold: 4, DetectedAt: detected},
	}))

	alerts, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, "sprite", alerts[0].ProductID)
	assert.Equal(t, domain.StockCritical, alerts[0].Level)
	assert.Equal(t, "Fanta", alerts[1].ProductName)
	assert.Equal(t, "750ml", alerts[2].Volume)
}

func TestAlertRepository_ListByProduct(t *testing.T) {
	db, mock := newMockDB(t, "postgres")
	repo := NewAlertRepository(db)
	detected := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"product_id", "product_name", "volume", "level", "current_sets", "threshold", "detected_at"}).
		AddRow("limca", "Limca", "750ml", "low", 3, 4, detected)
	mock.ExpectQuery(`SELECT (.+) FROM stock_alerts\s+WHERE product_id = \$1`).
		WithArgs("limca").
		WillReturnRows(rows)

	alerts, err := repo.ListByProduct(context.Background(), "limca")

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.StockLow, alerts[0].Level)
	assert.NoError(t, mock.ExpectationsWereMet())
}
