package ledger

import (
	"context"
	"time"

	"walletledger/internal/models"

	"github.com/shopspring/decimal"
)

// Config holds the tunable invariant checks of the engine.
type Config struct {
	// AllowZeroAmount permits zero-amount transactions. Off by default;
	// a zero amount classifies as CREDIT when allowed.
	AllowZeroAmount bool
	// MaxAmount bounds |amount| for a single transaction. Defaults to
	// DefaultMaxAmount.
	MaxAmount decimal.Decimal
}

// ApplyResult is the outcome of a committed balance mutation.
type ApplyResult struct {
	// Balance is the wallet balance after the transaction.
	Balance decimal.Decimal
	// TransactionID identifies the appended history record.
	TransactionID string
}

// SetupResult is the outcome of a wallet creation.
type SetupResult struct {
	WalletID      string
	Name          string
	Balance       decimal.Decimal
	TransactionID string
	CreatedAt     time.Time
}

// Cache is the wallet cache the engine invalidates after committed
// writes.
type Cache interface {
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, id string) error
}
