package ledger

import "github.com/shopspring/decimal"

// SetupDescription is the description of every genesis transaction.
const SetupDescription = "Initial wallet setup"

// DefaultMaxAmount bounds |amount| when Config.MaxAmount is unset.
var DefaultMaxAmount = decimal.RequireFromString("999999.9999")
