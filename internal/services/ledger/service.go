package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"walletledger/internal/models"
	"walletledger/internal/repositories"

	"github.com/shopspring/decimal"
)

type service struct {
	store   repositories.Store
	cache   Cache
	config  Config
	metrics MetricsCollector
}

// NewService creates a new ledger service. cache and metrics are
// optional; nil falls back to no-op implementations.
func NewService(store repositories.Store, cache Cache, config Config, metrics MetricsCollector) Service {
	if store == nil {
		panic("store is required")
	}
	if cache == nil {
		cache = noopCache{}
	}
	if config.MaxAmount.IsZero() {
		config.MaxAmount = DefaultMaxAmount
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		store:   store,
		cache:   cache,
		config:  config,
		metrics: metrics,
	}
}

func (s *service) ApplyTransaction(ctx context.Context, walletID string, amount decimal.Decimal, description string) (*ApplyResult, error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("apply_transaction", time.Since(start)) }()

	// The engine re-checks its invariants regardless of upstream
	// request validation.
	if err := s.validateAmount(amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	var result ApplyResult
	err := s.store.RunAtomic(ctx, func(tx repositories.Store) error {
		wallet, err := tx.FindWalletForUpdate(ctx, walletID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return ErrWalletNotFound
			}
			return err
		}

		newBalance := wallet.Balance.Add(amount)
		if newBalance.IsNegative() {
			// Abort before any mutation is persisted.
			return ErrInsufficientBalance
		}

		updated, err := tx.UpdateWalletBalance(ctx, wallet.ID, newBalance)
		if err != nil {
			return err
		}

		txn := &models.Transaction{
			WalletID:    wallet.ID,
			Amount:      amount,
			Balance:     newBalance,
			Description: description,
			Type:        models.TransactionTypeFor(amount),
		}
		if err := tx.InsertTransaction(ctx, txn); err != nil {
			return err
		}

		result = ApplyResult{
			Balance:       updated.Balance,
			TransactionID: txn.ID,
		}
		return nil
	})
	if err != nil {
		return nil, s.applyError(err)
	}

	if err := s.cache.InvalidateWallet(ctx, walletID); err != nil {
		// The committed state is authoritative; a stale cache entry
		// only survives until its TTL.
		s.metrics.RecordError("apply_transaction", "cache_invalidate")
	}
	s.metrics.RecordTransaction(models.TransactionTypeFor(amount), amount)

	return &result, nil
}

func (s *service) SetupWallet(ctx context.Context, name string, initialBalance decimal.Decimal) (*SetupResult, error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("setup_wallet", time.Since(start)) }()

	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if initialBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	var result SetupResult
	var created *models.Wallet
	err := s.store.RunAtomic(ctx, func(tx repositories.Store) error {
		wallet := &models.Wallet{
			Name:    name,
			Balance: initialBalance,
		}
		if err := tx.CreateWallet(ctx, wallet); err != nil {
			return err
		}

		// A wallet never exists without its genesis transaction.
		txn := &models.Transaction{
			WalletID:    wallet.ID,
			Amount:      initialBalance,
			Balance:     initialBalance,
			Description: SetupDescription,
			Type:        models.TransactionTypeCredit,
		}
		if err := tx.InsertTransaction(ctx, txn); err != nil {
			return err
		}

		created = wallet
		result = SetupResult{
			WalletID:      wallet.ID,
			Name:          wallet.Name,
			Balance:       wallet.Balance,
			TransactionID: txn.ID,
			CreatedAt:     wallet.CreatedAt,
		}
		return nil
	})
	if err != nil {
		s.metrics.RecordError("setup_wallet", "store")
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}

	if err := s.cache.SetWallet(ctx, created); err != nil {
		s.metrics.RecordError("setup_wallet", "cache_set")
	}
	s.metrics.RecordTransaction(models.TransactionTypeCredit, initialBalance)

	return &result, nil
}

func (s *service) validateAmount(amount decimal.Decimal) error {
	if amount.IsZero() && !s.config.AllowZeroAmount {
		return ErrZeroAmount
	}
	if amount.Abs().GreaterThan(s.config.MaxAmount) {
		return ErrAmountOutOfRange
	}
	return nil
}

// applyError keeps domain outcomes intact and wraps store faults so
// callers only ever see the service's error taxonomy.
func (s *service) applyError(err error) error {
	switch {
	case errors.Is(err, ErrWalletNotFound), errors.Is(err, ErrInsufficientBalance):
		return err
	default:
		s.metrics.RecordError("apply_transaction", "store")
		return fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}
}
