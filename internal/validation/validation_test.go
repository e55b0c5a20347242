package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestWalletName(t *testing.T) {
	assert.NoError(t, WalletName("Groceries"))
	assert.ErrorIs(t, WalletName(""), ErrNameRequired)
	assert.ErrorIs(t, WalletName("   "), ErrNameRequired)
}

func TestInitialBalance(t *testing.T) {
	assert.NoError(t, InitialBalance(decimal.Zero))
	assert.NoError(t, InitialBalance(dec(t, "100.5000")))
	assert.ErrorIs(t, InitialBalance(dec(t, "-0.0001")), ErrBalanceNegative)
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{name: "credit", amount: "25.7500"},
		{name: "debit", amount: "-15.3000"},
		{name: "upper bound", amount: "999999.9999"},
		{name: "lower bound", amount: "-999999.9999"},
		{name: "zero", amount: "0", wantErr: ErrAmountZero},
		{name: "above range", amount: "1000000", wantErr: ErrAmountOutOfRange},
		{name: "below range", amount: "-1000000", wantErr: ErrAmountOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Amount(dec(t, tt.amount))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	assert.NoError(t, Description("Recharge"))
	assert.ErrorIs(t, Description(""), ErrDescriptionRequired)
	assert.ErrorIs(t, Description(" \t"), ErrDescriptionRequired)
}

func TestWalletID(t *testing.T) {
	assert.NoError(t, WalletID("w-1"))
	assert.ErrorIs(t, WalletID(""), ErrWalletIDRequired)
}

func TestPagination(t *testing.T) {
	assert.NoError(t, Pagination(0, 10))
	assert.NoError(t, Pagination(5, 100))
	assert.ErrorIs(t, Pagination(-1, 10), ErrSkipNegative)
	assert.ErrorIs(t, Pagination(0, 0), ErrLimitOutOfRange)
	assert.ErrorIs(t, Pagination(0, 101), ErrLimitOutOfRange)
}
