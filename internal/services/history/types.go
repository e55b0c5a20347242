package history

import (
	"context"
	"time"

	"walletledger/internal/models"
	"walletledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// SortKey selects the field a transaction listing is ordered on. The
// zero value is the default ordering key (creation date).
type SortKey int

const (
	SortByDate SortKey = iota
	SortByAmount
)

// SortOrder is the listing direction. The zero value is descending,
// matching the API default of newest-first.
type SortOrder int

const (
	OrderDesc SortOrder = iota
	OrderAsc
)

// ParseSortKey maps the wire values "date" and "amount" onto a SortKey.
// An empty string yields the default.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "", "date":
		return SortByDate, nil
	case "amount":
		return SortByAmount, nil
	default:
		return SortByDate, ErrInvalidSortKey
	}
}

// ParseSortOrder maps the wire values "asc" and "desc" onto a
// SortOrder. An empty string yields the default.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "", "desc":
		return OrderDesc, nil
	case "asc":
		return OrderAsc, nil
	default:
		return OrderDesc, ErrInvalidSortOrder
	}
}

func (k SortKey) orderBy() repositories.OrderBy {
	if k == SortByAmount {
		return repositories.OrderByAmount
	}
	return repositories.OrderByDate
}

func (o SortOrder) order() repositories.Order {
	if o == OrderAsc {
		return repositories.Asc
	}
	return repositories.Desc
}

// ListQuery describes one transaction history request. Zero values for
// Limit, SortBy and Order mean the defaults (10, date, desc).
type ListQuery struct {
	WalletID  string
	Skip      int
	Limit     int
	SortBy    SortKey
	Order     SortOrder
	ExportAll bool
}

// TransactionView is the read model of one history record.
type TransactionView struct {
	ID          string          `json:"id"`
	WalletID    string          `json:"walletId"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
}

// TransactionPage is one page of a wallet's history. Total is the full
// transaction count for the wallet, independent of pagination.
type TransactionPage struct {
	Total        int64             `json:"total"`
	Transactions []TransactionView `json:"transactions"`
}

// WalletView is the read model of a wallet.
type WalletView struct {
	ID      string          `json:"id"`
	Balance decimal.Decimal `json:"balance"`
	Name    string          `json:"name"`
	Date    time.Time       `json:"date"`
}

// Cache is the wallet read cache consulted before the store.
type Cache interface {
	GetWallet(ctx context.Context, id string) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
}
