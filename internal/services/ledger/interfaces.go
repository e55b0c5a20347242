package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service defines the ledger engine interface.
type Service interface {
	// ApplyTransaction atomically applies a signed amount to the wallet
	// balance and appends the matching history record.
	ApplyTransaction(ctx context.Context, walletID string, amount decimal.Decimal, description string) (*ApplyResult, error)

	// SetupWallet creates a wallet together with its genesis CREDIT
	// transaction in one unit of work.
	SetupWallet(ctx context.Context, name string, initialBalance decimal.Decimal) (*SetupResult, error)
}
