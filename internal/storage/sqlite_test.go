package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindicoapp/sindico/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testTransaction(id, date, desc string) model.Transaction {
	d, _ := time.Parse(time.DateOnly, date)
	txn := model.Transaction{
		ID:          id,
		Date:        d,
		Direction:   model.DirectionIncome,
		Description: desc,
		Category:    "Taxa Condominial",
		Amount:      decimal.RequireFromString("350.00"),
	}
	txn.Hash = txn.GenerateHash()
	return txn
}

func TestSaveAndListTransactions(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	txns := []model.Transaction{
		testTransaction("t2", "2025-11-09", "Cota Casa 102"),
		testTransaction("t1", "2025-11-05", "Cota Casa 101"),
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))

	got, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Ordered by date then ID.
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "t2", got[1].ID)
	assert.Equal(t, "Cota Casa 101", got[0].Description)
	assert.Equal(t, model.DirectionIncome, got[0].Direction)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("350.00")))
	assert.Equal(t, "2025-11-05", got[0].Date.Format(time.DateOnly))
}

func TestSaveTransactionsIsIdempotent(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	txns := []model.Transaction{testTransaction("t1", "2025-11-05", "Cota Casa 101")}
	require.NoError(t, store.SaveTransactions(ctx, txns))
	require.NoError(t, store.SaveTransactions(ctx, txns))

	got, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSaveTransactionsFillsMissingHash(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	txn := testTransaction("t1", "2025-11-05", "Cota Casa 101")
	txn.Hash = ""
	require.NoError(t, store.SaveTransactions(ctx, []model.Transaction{txn}))

	got, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].Hash)
}

func TestSaveTransactionsValidation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		name string
		txns []model.Transaction
	}{
		{name: "nil slice", txns: nil},
		{name: "empty slice", txns: []model.Transaction{}},
		{
			name: "missing ID",
			txns: func() []model.Transaction {
				txn := testTransaction("t1", "2025-11-05", "Cota")
				txn.ID = ""
				return []model.Transaction{txn}
			}(),
		},
		{
			name: "bad direction",
			txns: func() []model.Transaction {
				txn := testTransaction("t1", "2025-11-05", "Cota")
				txn.Direction = "transfer"
				return []model.Transaction{txn}
			}(),
		},
		{
			name: "negative amount",
			txns: func() []model.Transaction {
				txn := testTransaction("t1", "2025-11-05", "Cota")
				txn.Amount = decimal.RequireFromString("-1")
				return []model.Transaction{txn}
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, store.SaveTransactions(ctx, tt.txns))
		})
	}
}

func TestListTransactionsEmptyLedger(t *testing.T) {
	store := newTestStorage(t)

	got, err := store.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStorage(t)
	require.NoError(t, store.Migrate(context.Background()))
}
