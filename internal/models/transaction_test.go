package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionTypeFor(t *testing.T) {
	credit := decimal.RequireFromString("25.7500")
	debit := decimal.RequireFromString("-15.3000")

	assert.Equal(t, TransactionTypeCredit, TransactionTypeFor(credit))
	assert.Equal(t, TransactionTypeDebit, TransactionTypeFor(debit))
	// Zero classifies as CREDIT: the tag mirrors amount >= 0.
	assert.Equal(t, TransactionTypeCredit, TransactionTypeFor(decimal.Zero))
}
