package models

import "github.com/shopspring/decimal"

// Transfer request statuses
const (
	TransferRequestPending  = "pending"
	TransferRequestApproved = "approved"
	TransferRequestRejected = "rejected"
	TransferRequestExpired  = "expired"
)

// TransferRequestItem is a pending money request addressed to the
// signed-in user.
type TransferRequestItem struct {
	ID              int
	Code            string
	RequesterName   string
	RequesterWallet string
	Amount          decimal.Decimal
	Description     string
	Status          string
	CreatedAt       string
	ExpiresAt       string
}

// TransferRequestCreated is the server's acknowledgement of a newly
// created money request.
type TransferRequestCreated struct {
	ID   int
	Code string
}

// SearchedUser is a directory match when picking a transfer-request
// recipient.
type SearchedUser struct {
	ID            int
	Username      string
	FullName      string
	WalletAddress string
}
