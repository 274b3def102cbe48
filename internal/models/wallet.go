package models

import "github.com/shopspring/decimal"

// DefaultCurrency is applied when the server omits a currency code.
const DefaultCurrency = "FTK"

// Wallet is the balance snapshot as last fetched from the server.
// The client never computes a balance locally; every field here is
// authoritative only as of the fetch that produced it.
type Wallet struct {
	ID             int
	Address        string
	Balance        decimal.Decimal
	LockedBalance  decimal.Decimal
	LifetimeEarned decimal.Decimal
	LifetimeSpent  decimal.Decimal
	EntityName     string
	EntityType     string
	Currency       string
}

// TransferReceipt is the server's acknowledgement of a completed transfer.
// NewBalance is a server-echoed value suitable for optimistic display; the
// next Balance fetch remains the source of truth.
type TransferReceipt struct {
	TransactionHash string
	Amount          decimal.Decimal
	Fee             decimal.Decimal
	Recipient       string
	NewBalance      decimal.Decimal
	Message         string
}
