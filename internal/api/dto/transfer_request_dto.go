package dto

import "github.com/shopspring/decimal"

// ==============================================
// TRANSFER REQUEST DTOs
// ==============================================

// TransferRequestBody - ask another user for money
type TransferRequestBody struct {
	RecipientID int             `json:"recipient_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// ApproveTransferRequest - paying user approves with their PIN
type ApproveTransferRequest struct {
	RequestID int    `json:"request_id"`
	Pin       string `json:"pin"`
}

// RejectTransferRequest
type RejectTransferRequest struct {
	RequestID int `json:"request_id"`
}

// TransferRequestResponse
type TransferRequestResponse struct {
	APIResponse
	RequestID   int    `json:"request_id,omitempty"`
	RequestCode string `json:"request_code,omitempty"`
}

// TransferRequestItemDTO
type TransferRequestItemDTO struct {
	ID              int             `json:"id"`
	RequestCode     string          `json:"request_code,omitempty"`
	RequesterName   string          `json:"requester_name,omitempty"`
	RequesterWallet string          `json:"requester_wallet,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"created_at,omitempty"`
	ExpiresAt       string          `json:"expires_at,omitempty"`
}

// TransferRequestsListResponse
type TransferRequestsListResponse struct {
	APIResponse
	Requests []TransferRequestItemDTO `json:"requests,omitempty"`
}

// SearchedUserDTO
type SearchedUserDTO struct {
	ID            int    `json:"id"`
	Username      string `json:"username"`
	FullName      string `json:"full_name,omitempty"`
	WalletAddress string `json:"wallet_address,omitempty"`
}

// UserSearchResponse
type UserSearchResponse struct {
	APIResponse
	Users []SearchedUserDTO `json:"users,omitempty"`
}
