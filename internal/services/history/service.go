// Package history serves paginated, sorted views of wallet transaction
// histories and point wallet lookups. It never mutates state; the
// append-only transaction log lets reads run without coordination.
package history

import (
	"context"
	"errors"
	"fmt"

	"walletledger/internal/models"
	"walletledger/internal/repositories"
)

// DefaultLimit is the page size used when the query does not set one.
const DefaultLimit = 10

// MaxLimit caps the page size of a single request.
const MaxLimit = 100

// Service defines the history reader interface.
type Service interface {
	ListTransactions(ctx context.Context, query ListQuery) (*TransactionPage, error)
	GetWallet(ctx context.Context, id string) (*WalletView, error)
	ListWallets(ctx context.Context) ([]WalletView, error)
}

type service struct {
	store repositories.Store
	cache Cache
}

// NewService creates a new history service. cache may be nil.
func NewService(store repositories.Store, cache Cache) Service {
	if store == nil {
		panic("store is required")
	}
	return &service{
		store: store,
		cache: cache,
	}
}

func (s *service) ListTransactions(ctx context.Context, query ListQuery) (*TransactionPage, error) {
	if query.Limit == 0 {
		query.Limit = DefaultLimit
	}
	if query.Skip < 0 {
		return nil, ErrInvalidSkip
	}
	if query.Limit < 1 || query.Limit > MaxLimit {
		return nil, ErrInvalidLimit
	}

	if _, err := s.store.FindWallet(ctx, query.WalletID); err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to check wallet: %w", err)
	}

	// Full count first; pagination never changes it.
	total, err := s.store.CountTransactions(ctx, query.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	txns, err := s.store.FindTransactions(ctx, repositories.TransactionQuery{
		WalletID: query.WalletID,
		OrderBy:  query.SortBy.orderBy(),
		Order:    query.Order.order(),
		Skip:     query.Skip,
		Limit:    query.Limit,
		All:      query.ExportAll,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	views := make([]TransactionView, 0, len(txns))
	for _, txn := range txns {
		views = append(views, newTransactionView(txn))
	}
	return &TransactionPage{
		Total:        total,
		Transactions: views,
	}, nil
}

func (s *service) GetWallet(ctx context.Context, id string) (*WalletView, error) {
	if s.cache != nil {
		if wallet, err := s.cache.GetWallet(ctx, id); err == nil {
			return newWalletView(wallet), nil
		}
	}

	wallet, err := s.store.FindWallet(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	if s.cache != nil {
		// Best effort; the store copy is authoritative.
		_ = s.cache.SetWallet(ctx, wallet)
	}
	return newWalletView(wallet), nil
}

func (s *service) ListWallets(ctx context.Context) ([]WalletView, error) {
	wallets, err := s.store.FindWallets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	views := make([]WalletView, 0, len(wallets))
	for i := range wallets {
		views = append(views, *newWalletView(&wallets[i]))
	}
	return views, nil
}

func newWalletView(w *models.Wallet) *WalletView {
	return &WalletView{
		ID:      w.ID,
		Balance: w.Balance,
		Name:    w.Name,
		Date:    w.CreatedAt,
	}
}

func newTransactionView(t models.Transaction) TransactionView {
	return TransactionView{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Amount:      t.Amount,
		Balance:     t.Balance,
		Description: t.Description,
		Date:        t.CreatedAt,
		Type:        t.Type,
	}
}
