package history

import "errors"

// Service errors
var (
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrInvalidSortKey   = errors.New("sort key must be one of: amount, date")
	ErrInvalidSortOrder = errors.New("sort order must be one of: asc, desc")
	ErrInvalidSkip      = errors.New("skip must not be negative")
	ErrInvalidLimit     = errors.New("limit must be between 1 and 100")
)
