package validation

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountZero          = errors.New("transaction amount cannot be zero")
	ErrAmountOutOfRange    = errors.New("amount must be between -999999.9999 and 999999.9999")
	ErrDescriptionRequired = errors.New("description is required")
	ErrWalletIDRequired    = errors.New("walletId is required")
	ErrSkipNegative        = errors.New("skip must not be negative")
	ErrLimitOutOfRange     = errors.New("limit must be between 1 and 100")
)

var maxAmount = decimal.RequireFromString("999999.9999")

// Amount checks a transaction amount against the design range.
func Amount(amount decimal.Decimal) error {
	if amount.IsZero() {
		return ErrAmountZero
	}
	if amount.Abs().GreaterThan(maxAmount) {
		return ErrAmountOutOfRange
	}
	return nil
}

// Description checks the free-form transaction text.
func Description(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// WalletID checks the wallet reference of a history query.
func WalletID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrWalletIDRequired
	}
	return nil
}

// Pagination checks skip/limit bounds for a history query.
func Pagination(skip, limit int) error {
	if skip < 0 {
		return ErrSkipNegative
	}
	if limit < 1 || limit > 100 {
		return ErrLimitOutOfRange
	}
	return nil
}
