package ledger

import "errors"

// Service errors
var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance for this transaction")
	ErrZeroAmount          = errors.New("transaction amount cannot be zero")
	ErrAmountOutOfRange    = errors.New("transaction amount out of range")
	ErrEmptyDescription    = errors.New("transaction description cannot be empty")
	ErrEmptyName           = errors.New("wallet name cannot be empty")
	ErrNegativeBalance     = errors.New("initial balance cannot be negative")
	ErrTransactionFailed   = errors.New("transaction failed")
)
