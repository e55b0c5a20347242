package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"walletledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by the given GORM database handle.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindWallet(ctx context.Context, id string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := s.db.WithContext(ctx).First(&wallet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (s *gormStore) FindWalletForUpdate(ctx context.Context, id string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&wallet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}
	return &wallet, nil
}

func (s *gormStore) FindWallets(ctx context.Context) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (s *gormStore) CreateWallet(ctx context.Context, wallet *models.Wallet) error {
	if err := s.db.WithContext(ctx).Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateWalletBalance(ctx context.Context, id string, balance decimal.Decimal) (*models.Wallet, error) {
	wallet, err := s.FindWallet(ctx, id)
	if err != nil {
		return nil, err
	}
	wallet.Balance = balance
	// Save bumps UpdatedAt.
	if err := s.db.WithContext(ctx).Save(wallet).Error; err != nil {
		return nil, fmt.Errorf("failed to update wallet balance: %w", err)
	}
	return wallet, nil
}

func (s *gormStore) InsertTransaction(ctx context.Context, txn *models.Transaction) error {
	if err := s.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (s *gormStore) CountTransactions(ctx context.Context, walletID string) (int64, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.Transaction{})
	if walletID != "" {
		q = q.Where("wallet_id = ?", walletID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func (s *gormStore) FindTransactions(ctx context.Context, query TransactionQuery) ([]models.Transaction, error) {
	q := s.db.WithContext(ctx).Model(&models.Transaction{})
	if query.WalletID != "" {
		q = q.Where("wallet_id = ?", query.WalletID)
	}
	q = q.Order(orderClause(query.OrderBy, query.Order))
	if !query.All {
		q = q.Offset(query.Skip).Limit(query.Limit)
	}

	var txns []models.Transaction
	if err := q.Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txns, nil
}

// orderClause maps the enumerated sort key and direction onto a fixed
// ORDER BY clause. The id tiebreak keeps pagination stable when sort
// keys collide.
func orderClause(by OrderBy, order Order) string {
	col := "created_at"
	if by == OrderByAmount {
		col = "amount"
	}
	dir := "DESC"
	if order == Asc {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s, id ASC", col, dir)
}

func (s *gormStore) RunAtomic(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}
