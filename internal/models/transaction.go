package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction types
const (
	TransactionTypeCredit = "CREDIT"
	TransactionTypeDebit  = "DEBIT"
)

// Transaction is one immutable entry in a wallet's history. Amount is
// signed (positive credits, negative debits) and Balance is the wallet
// balance immediately after this entry was applied, snapshotted at
// write time and never recomputed.
type Transaction struct {
	ID          string          `gorm:"type:uuid;primarykey" json:"id"`
	WalletID    string          `gorm:"type:uuid;not null;index" json:"walletId"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"amount"`
	Balance     decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"balance"`
	Description string          `gorm:"not null" json:"description"`
	Type        string          `gorm:"not null" json:"type"`
	CreatedAt   time.Time       `gorm:"index" json:"createdAt"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TransactionTypeFor derives the CREDIT/DEBIT tag from the sign of the
// amount. The tag is redundant with the sign but kept explicit on the
// record for query convenience.
func TransactionTypeFor(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return TransactionTypeDebit
	}
	return TransactionTypeCredit
}
