package dto

import "github.com/shopspring/decimal"

// ==============================================
// WALLET REQUEST DTOs
// ==============================================

// TransferRequest for wallet-to-wallet sends
type TransferRequest struct {
	RecipientWallet string          `json:"recipient_wallet"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	Pin             string          `json:"pin"`
}

// ==============================================
// WALLET RESPONSE DTOs
// ==============================================

// WalletBalanceResponse
type WalletBalanceResponse struct {
	APIResponse
	Balance        *decimal.Decimal `json:"balance,omitempty"`
	LockedBalance  *decimal.Decimal `json:"locked_balance,omitempty"`
	LifetimeEarned *decimal.Decimal `json:"lifetime_earned,omitempty"`
	LifetimeSpent  *decimal.Decimal `json:"lifetime_spent,omitempty"`
	WalletAddress  string           `json:"wallet_address,omitempty"`
	EntityName     string           `json:"entity_name,omitempty"`
	EntityType     string           `json:"entity_type,omitempty"`
	Currency       string           `json:"currency,omitempty"`
}

// TransactionDTO - one history entry. The backend reports direction in
// the "type" field; the transaction kind rides in "transaction_type".
type TransactionDTO struct {
	ID              int              `json:"id"`
	Hash            string           `json:"hash,omitempty"`
	Type            string           `json:"type"`
	TransactionType string           `json:"transaction_type,omitempty"`
	Amount          decimal.Decimal  `json:"amount"`
	Fee             *decimal.Decimal `json:"fee,omitempty"`
	Counterparty    string           `json:"counterparty,omitempty"`
	Description     string           `json:"description,omitempty"`
	Status          string           `json:"status"`
	CreatedAt       string           `json:"created_at"`
	CompletedAt     string           `json:"completed_at,omitempty"`
}

// TransactionsResponse
type TransactionsResponse struct {
	APIResponse
	Transactions []TransactionDTO `json:"transactions,omitempty"`
}

// TransferResponse - acknowledgement of a transfer or POS charge.
// new_balance is the sender's balance echoed by the server.
type TransferResponse struct {
	APIResponse
	TransactionHash string           `json:"transaction_hash,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Fee             *decimal.Decimal `json:"fee,omitempty"`
	Recipient       string           `json:"recipient,omitempty"`
	NewBalance      *decimal.Decimal `json:"new_balance,omitempty"`
}

// ==============================================
// PIN DTOs
// ==============================================

// SetPinRequest
type SetPinRequest struct {
	Pin        string `json:"pin"`
	ConfirmPin string `json:"confirm_pin"`
}

// ChangePinRequest
type ChangePinRequest struct {
	CurrentPin string `json:"current_pin"`
	NewPin     string `json:"new_pin"`
	ConfirmPin string `json:"confirm_pin"`
}

// VerifyPinRequest
type VerifyPinRequest struct {
	Pin string `json:"pin"`
}

// PinStatusResponse
type PinStatusResponse struct {
	APIResponse
	HasPin      bool   `json:"has_pin"`
	IsLocked    bool   `json:"is_locked"`
	LockedUntil string `json:"locked_until,omitempty"`
}
