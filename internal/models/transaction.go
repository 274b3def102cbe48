package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ==============================================
// TRANSACTION MODELS
// ==============================================

// Transaction directions
const (
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
)

// Transaction kinds
const (
	TransactionTypeTransfer = "transfer"
	TransactionTypeReward   = "reward"
	TransactionTypePayment  = "payment"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction is one wallet movement as reported by the server.
// Amount is always non-negative; the sign a UI shows comes from the
// direction, never from the number itself.
type Transaction struct {
	ID           int
	Hash         string
	Direction    string // "incoming" or "outgoing"
	Type         string // transfer, reward, payment, ...
	Amount       decimal.Decimal
	Fee          decimal.Decimal
	Counterparty string
	Description  string
	Status       string
	CreatedAt    string
	CompletedAt  string
}

// IsIncoming reports whether money moved into the wallet. Comparison is
// case-insensitive; Amount's sign is never inspected.
func (t Transaction) IsIncoming() bool {
	return strings.EqualFold(t.Direction, DirectionIncoming)
}

// DashboardStats is the merchant dashboard aggregate. It is assembled
// client-side from the richer dashboard payload, not stored server-side
// in this shape.
type DashboardStats struct {
	TodaySales         decimal.Decimal
	TotalTransactions  int
	WalletBalance      decimal.Decimal
	PendingPayments    int
	RecentTransactions []Transaction
}
