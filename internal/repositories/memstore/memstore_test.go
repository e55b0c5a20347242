package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"walletledger/internal/models"
	"walletledger/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestRunAtomic_CommitsOnSuccess(t *testing.T) {
	store := New()
	ctx := context.Background()

	err := store.RunAtomic(ctx, func(tx repositories.Store) error {
		if err := tx.CreateWallet(ctx, &models.Wallet{ID: "w-1", Name: "Atomic", Balance: dec(t, "10")}); err != nil {
			return err
		}
		return tx.InsertTransaction(ctx, &models.Transaction{
			WalletID: "w-1", Amount: dec(t, "10"), Balance: dec(t, "10"),
			Description: "genesis", Type: models.TransactionTypeCredit,
		})
	})
	require.NoError(t, err)

	wallet, err := store.FindWallet(ctx, "w-1")
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(dec(t, "10")))

	count, err := store.CountTransactions(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRunAtomic_RollsBackOnError(t *testing.T) {
	store := New()
	ctx := context.Background()
	require.NoError(t, store.CreateWallet(ctx, &models.Wallet{ID: "w-1", Name: "Atomic", Balance: dec(t, "10")}))

	boom := errors.New("boom")
	err := store.RunAtomic(ctx, func(tx repositories.Store) error {
		if _, err := tx.UpdateWalletBalance(ctx, "w-1", dec(t, "99")); err != nil {
			return err
		}
		if err := tx.InsertTransaction(ctx, &models.Transaction{WalletID: "w-1", Amount: dec(t, "89"), Balance: dec(t, "99"), Description: "x", Type: models.TransactionTypeCredit}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// Writes inside the failed unit of work are not observable.
	wallet, err := store.FindWallet(ctx, "w-1")
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(dec(t, "10")))

	count, err := store.CountTransactions(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRunAtomic_CancelledContext(t *testing.T) {
	store := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.RunAtomic(ctx, func(tx repositories.Store) error {
		return tx.CreateWallet(ctx, &models.Wallet{ID: "w-1", Name: "Never", Balance: decimal.Zero})
	})
	assert.Error(t, err)

	_, err = store.FindWallet(context.Background(), "w-1")
	assert.ErrorIs(t, err, repositories.ErrWalletNotFound)
}

func TestFindWallet_NotFound(t *testing.T) {
	store := New()
	_, err := store.FindWallet(context.Background(), "nope")
	assert.ErrorIs(t, err, repositories.ErrWalletNotFound)

	_, err = store.UpdateWalletBalance(context.Background(), "nope", decimal.Zero)
	assert.ErrorIs(t, err, repositories.ErrWalletNotFound)
}

func seedTransactions(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateWallet(ctx, &models.Wallet{ID: "w-1", Name: "Seed", Balance: dec(t, "6")}))
	require.NoError(t, store.CreateWallet(ctx, &models.Wallet{ID: "w-2", Name: "Other", Balance: dec(t, "1")}))

	rows := []models.Transaction{
		{ID: "t-1", WalletID: "w-1", Amount: dec(t, "3"), Balance: dec(t, "3"), CreatedAt: base},
		{ID: "t-2", WalletID: "w-1", Amount: dec(t, "1"), Balance: dec(t, "4"), CreatedAt: base.Add(time.Second)},
		{ID: "t-3", WalletID: "w-1", Amount: dec(t, "2"), Balance: dec(t, "6"), CreatedAt: base.Add(2 * time.Second)},
		{ID: "t-4", WalletID: "w-2", Amount: dec(t, "1"), Balance: dec(t, "1"), CreatedAt: base.Add(3 * time.Second)},
	}
	for i := range rows {
		rows[i].Description = "seed"
		rows[i].Type = models.TransactionTypeCredit
		require.NoError(t, store.InsertTransaction(ctx, &rows[i]))
	}
}

func TestCountTransactions_Scopes(t *testing.T) {
	store := New()
	seedTransactions(t, store)
	ctx := context.Background()

	global, err := store.CountTransactions(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), global)

	scoped, err := store.CountTransactions(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), scoped)
}

func TestFindTransactions_OrderingAndPaging(t *testing.T) {
	store := New()
	seedTransactions(t, store)
	ctx := context.Background()

	byAmount, err := store.FindTransactions(ctx, repositories.TransactionQuery{
		WalletID: "w-1",
		OrderBy:  repositories.OrderByAmount,
		Order:    repositories.Asc,
		All:      true,
	})
	require.NoError(t, err)
	require.Len(t, byAmount, 3)
	assert.Equal(t, "t-2", byAmount[0].ID)
	assert.Equal(t, "t-3", byAmount[1].ID)
	assert.Equal(t, "t-1", byAmount[2].ID)

	page, err := store.FindTransactions(ctx, repositories.TransactionQuery{
		WalletID: "w-1",
		Order:    repositories.Asc,
		Skip:     1,
		Limit:    1,
	})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "t-2", page[0].ID)

	beyond, err := store.FindTransactions(ctx, repositories.TransactionQuery{
		WalletID: "w-1",
		Skip:     10,
		Limit:    5,
	})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestInsertTransaction_AssignsIDAndTimestamp(t *testing.T) {
	store := New()
	ctx := context.Background()
	require.NoError(t, store.CreateWallet(ctx, &models.Wallet{ID: "w-1", Name: "Seed", Balance: decimal.Zero}))

	txn := &models.Transaction{WalletID: "w-1", Amount: decimal.Zero, Balance: decimal.Zero, Description: "x", Type: models.TransactionTypeCredit}
	require.NoError(t, store.InsertTransaction(ctx, txn))
	assert.NotEmpty(t, txn.ID)
	assert.False(t, txn.CreatedAt.IsZero())
}
