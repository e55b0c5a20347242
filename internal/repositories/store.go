package repositories

import (
	"context"
	"errors"

	"walletledger/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidWalletData   = errors.New("invalid wallet data")
)

// OrderBy selects the column a transaction listing is sorted on.
// Enumerated rather than stringly-typed so every value maps to a fixed
// ORDER BY clause.
type OrderBy int

const (
	OrderByDate OrderBy = iota
	OrderByAmount
)

// Order is the sort direction for a transaction listing.
type Order int

const (
	Desc Order = iota
	Asc
)

// TransactionQuery describes one page of a wallet's transaction
// history. An empty WalletID means the global log. When All is set,
// Skip and Limit are ignored and the full ordered history is returned.
type TransactionQuery struct {
	WalletID string
	OrderBy  OrderBy
	Order    Order
	Skip     int
	Limit    int
	All      bool
}

// Store defines the persistence operations the ledger engine and the
// history reader depend on. Implementations must guarantee that
// RunAtomic executes its unit of work with serializable, all-or-nothing
// semantics on the wallets it touches: either every write inside the
// closure becomes durably visible together, or none of them do.
type Store interface {
	// Wallet operations
	FindWallet(ctx context.Context, id string) (*models.Wallet, error)
	// FindWalletForUpdate locks the wallet row for the duration of the
	// surrounding unit of work. Only meaningful inside RunAtomic.
	FindWalletForUpdate(ctx context.Context, id string) (*models.Wallet, error)
	FindWallets(ctx context.Context) ([]models.Wallet, error)
	CreateWallet(ctx context.Context, wallet *models.Wallet) error
	UpdateWalletBalance(ctx context.Context, id string, balance decimal.Decimal) (*models.Wallet, error)

	// Transaction operations
	InsertTransaction(ctx context.Context, txn *models.Transaction) error
	CountTransactions(ctx context.Context, walletID string) (int64, error)
	FindTransactions(ctx context.Context, query TransactionQuery) ([]models.Transaction, error)

	// RunAtomic executes fn against a store scoped to one unit of work.
	// If fn returns an error, or the unit of work is cancelled before
	// commit, no write made inside fn is observable afterwards.
	RunAtomic(ctx context.Context, fn func(Store) error) error
}
