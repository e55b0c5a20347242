/*
Package ledger implements the invariant-preserving balance mutation
path for wallets.

Every balance change runs as one serializable unit of work against the
store: the wallet row is read under lock, the new balance is computed
with exact decimal arithmetic and checked for non-negativity, and the
wallet update plus the immutable transaction record commit together or
not at all. A wallet therefore never exists without its genesis
transaction, never goes negative, and its history always chains:
each transaction's balance equals the previous balance plus its amount.

Usage:

	svc := ledger.NewService(store, cache, ledger.Config{}, nil)

	// Create a wallet with its genesis CREDIT transaction
	setup, err := svc.SetupWallet(ctx, "Groceries", decimal.RequireFromString("100.5000"))

	// Apply a signed amount (positive = credit, negative = debit)
	res, err := svc.ApplyTransaction(ctx, setup.WalletID, amount, "Recharge")

Error Handling:

The service returns sentinel errors the caller can test with errors.Is:
  - ErrWalletNotFound: the wallet id does not exist
  - ErrInsufficientBalance: the debit would drive the balance negative
  - ErrZeroAmount, ErrAmountOutOfRange, ErrEmptyDescription, ErrEmptyName,
    ErrNegativeBalance: input rejected before any store interaction
  - ErrTransactionFailed: the store failed mid-operation; the unit of
    work rolled back and no partial state is observable
*/
package ledger
