// Package memstore provides an in-memory Store implementation. It
// backs the service tests and is handy for local development without a
// PostgreSQL instance. A single mutex serializes units of work, and
// RunAtomic runs its closure against a copy of the state so a failed
// unit of work leaves nothing behind.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"walletledger/internal/models"
	"walletledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is a mutex-guarded, map-backed repositories.Store.
type Store struct {
	mu      sync.Mutex
	wallets map[string]models.Wallet
	txns    []models.Transaction
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		wallets: make(map[string]models.Wallet),
	}
}

var _ repositories.Store = (*Store)(nil)

// view is the handle RunAtomic passes to its unit of work. It operates
// on the uncommitted copy without re-locking; the parent holds the lock
// for the whole unit of work.
type view struct {
	store *Store
}

func (s *Store) FindWallet(ctx context.Context, id string) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findWallet(id)
}

func (s *Store) findWallet(id string) (*models.Wallet, error) {
	wallet, ok := s.wallets[id]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	return &wallet, nil
}

func (s *Store) FindWalletForUpdate(ctx context.Context, id string) (*models.Wallet, error) {
	// The store-wide mutex already excludes concurrent units of work.
	return s.FindWallet(ctx, id)
}

func (s *Store) FindWallets(ctx context.Context) ([]models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findWallets()
}

func (s *Store) findWallets() ([]models.Wallet, error) {
	wallets := make([]models.Wallet, 0, len(s.wallets))
	for _, w := range s.wallets {
		wallets = append(wallets, w)
	}
	sort.Slice(wallets, func(i, j int) bool {
		if !wallets[i].CreatedAt.Equal(wallets[j].CreatedAt) {
			return wallets[i].CreatedAt.Before(wallets[j].CreatedAt)
		}
		return wallets[i].ID < wallets[j].ID
	})
	return wallets, nil
}

func (s *Store) CreateWallet(ctx context.Context, wallet *models.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createWallet(wallet)
}

func (s *Store) createWallet(wallet *models.Wallet) error {
	if wallet.ID == "" {
		wallet.ID = uuid.NewString()
	}
	now := time.Now()
	if wallet.CreatedAt.IsZero() {
		wallet.CreatedAt = now
	}
	wallet.UpdatedAt = now
	s.wallets[wallet.ID] = *wallet
	return nil
}

func (s *Store) UpdateWalletBalance(ctx context.Context, id string, balance decimal.Decimal) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateWalletBalance(id, balance)
}

func (s *Store) updateWalletBalance(id string, balance decimal.Decimal) (*models.Wallet, error) {
	wallet, ok := s.wallets[id]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	wallet.Balance = balance
	wallet.UpdatedAt = time.Now()
	s.wallets[id] = wallet
	return &wallet, nil
}

func (s *Store) InsertTransaction(ctx context.Context, txn *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertTransaction(txn)
}

func (s *Store) insertTransaction(txn *models.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now()
	}
	s.txns = append(s.txns, *txn)
	return nil
}

func (s *Store) CountTransactions(ctx context.Context, walletID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countTransactions(walletID)
}

func (s *Store) countTransactions(walletID string) (int64, error) {
	if walletID == "" {
		return int64(len(s.txns)), nil
	}
	var count int64
	for _, t := range s.txns {
		if t.WalletID == walletID {
			count++
		}
	}
	return count, nil
}

func (s *Store) FindTransactions(ctx context.Context, query repositories.TransactionQuery) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findTransactions(query)
}

func (s *Store) findTransactions(query repositories.TransactionQuery) ([]models.Transaction, error) {
	matched := make([]models.Transaction, 0, len(s.txns))
	for _, t := range s.txns {
		if query.WalletID == "" || t.WalletID == query.WalletID {
			matched = append(matched, t)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		var less, equal bool
		if query.OrderBy == repositories.OrderByAmount {
			cmp := a.Amount.Cmp(b.Amount)
			less, equal = cmp < 0, cmp == 0
		} else {
			less, equal = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		}
		if equal {
			// id tiebreak, ascending regardless of direction, matching
			// the SQL store's ORDER BY clause.
			return a.ID < b.ID
		}
		if query.Order == repositories.Desc {
			return !less
		}
		return less
	})

	if query.All {
		return matched, nil
	}
	if query.Skip >= len(matched) {
		return []models.Transaction{}, nil
	}
	matched = matched[query.Skip:]
	if query.Limit > 0 && query.Limit < len(matched) {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

// RunAtomic executes fn against a copy of the store state and swaps the
// copy in only when fn succeeds, so a failing unit of work has no
// observable effect. The store mutex is held throughout, which gives
// the serialization the Store contract asks for.
func (s *Store) RunAtomic(ctx context.Context, fn func(repositories.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := &Store{
		wallets: make(map[string]models.Wallet, len(s.wallets)),
		txns:    make([]models.Transaction, len(s.txns)),
	}
	for id, w := range s.wallets {
		snapshot.wallets[id] = w
	}
	copy(snapshot.txns, s.txns)

	if err := fn(&view{store: snapshot}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.wallets = snapshot.wallets
	s.txns = snapshot.txns
	return nil
}

// Reset drops all state. Test helper.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets = make(map[string]models.Wallet)
	s.txns = nil
}

func (v *view) FindWallet(ctx context.Context, id string) (*models.Wallet, error) {
	return v.store.findWallet(id)
}

func (v *view) FindWalletForUpdate(ctx context.Context, id string) (*models.Wallet, error) {
	return v.store.findWallet(id)
}

func (v *view) FindWallets(ctx context.Context) ([]models.Wallet, error) {
	return v.store.findWallets()
}

func (v *view) CreateWallet(ctx context.Context, wallet *models.Wallet) error {
	return v.store.createWallet(wallet)
}

func (v *view) UpdateWalletBalance(ctx context.Context, id string, balance decimal.Decimal) (*models.Wallet, error) {
	return v.store.updateWalletBalance(id, balance)
}

func (v *view) InsertTransaction(ctx context.Context, txn *models.Transaction) error {
	return v.store.insertTransaction(txn)
}

func (v *view) CountTransactions(ctx context.Context, walletID string) (int64, error) {
	return v.store.countTransactions(walletID)
}

func (v *view) FindTransactions(ctx context.Context, query repositories.TransactionQuery) ([]models.Transaction, error) {
	return v.store.findTransactions(query)
}

func (v *view) RunAtomic(ctx context.Context, fn func(repositories.Store) error) error {
	// Already inside a unit of work; run against the same copy.
	return fn(v)
}
