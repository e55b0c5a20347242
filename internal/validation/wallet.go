// Package validation holds the request-level field checks performed by
// the HTTP handlers before any service call. The services re-check the
// invariants they own; these functions exist to reject malformed input
// with precise messages before it reaches the store.
package validation

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrBalanceNegative = errors.New("balance must not be negative")
)

// WalletName checks the display label of a wallet.
func WalletName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}

// InitialBalance checks the opening balance of a wallet.
func InitialBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return ErrBalanceNegative
	}
	return nil
}
