package dto

import "github.com/shopspring/decimal"

// ==============================================
// PAYMENT REQUEST DTOs
// ==============================================

// PaymentRequestBody - merchant creates a charge
type PaymentRequestBody struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description,omitempty"`
}

// ProcessPaymentRequest - customer pays a merchant charge by code
type ProcessPaymentRequest struct {
	RequestCode string `json:"request_code"`
	Pin         string `json:"pin"`
}

// PosPaymentRequest - merchant charges a presented NFC/QR token
type PosPaymentRequest struct {
	SenderWallet string          `json:"sender_wallet"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentToken string          `json:"payment_token"`
	Method       string          `json:"method"` // "nfc" or "qr"
}

// ==============================================
// PAYMENT RESPONSE DTOs
// ==============================================

// PaymentRequestResponse
type PaymentRequestResponse struct {
	APIResponse
	RequestCode string           `json:"request_code,omitempty"`
	QRData      string           `json:"qr_data,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Currency    string           `json:"currency,omitempty"`
	ExpiresAt   string           `json:"expires_at,omitempty"`
}

// PaymentVerifyResponse
type PaymentVerifyResponse struct {
	APIResponse
	Valid        bool             `json:"valid"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Currency     string           `json:"currency,omitempty"`
	MerchantName string           `json:"merchant_name,omitempty"`
	Description  string           `json:"description,omitempty"`
}

// PaymentRecordDTO
type PaymentRecordDTO struct {
	ID          int             `json:"id"`
	RequestCode string          `json:"request_code,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at,omitempty"`
	PaidAt      string          `json:"paid_at,omitempty"`
}

// PaymentHistoryResponse
type PaymentHistoryResponse struct {
	APIResponse
	Payments []PaymentRecordDTO `json:"payments,omitempty"`
}

// ==============================================
// NFC DTOs
// ==============================================

// NfcRegisterDeviceRequest
type NfcRegisterDeviceRequest struct {
	DeviceID   string `json:"device_id"`
	DeviceName string `json:"device_name,omitempty"`
}

// NfcGenerateTokenRequest - customer side, amount to authorize
type NfcGenerateTokenRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// NfcValidateRequest - merchant side, raw payload read from the tap
type NfcValidateRequest struct {
	NfcData string `json:"nfc_data"`
}

// NfcTokenResponse
type NfcTokenResponse struct {
	APIResponse
	PaymentToken string           `json:"payment_token,omitempty"`
	NfcData      string           `json:"nfc_data,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	ExpiresAt    string           `json:"expires_at,omitempty"`
}

// NfcValidationResponse
type NfcValidationResponse struct {
	APIResponse
	Valid        bool             `json:"valid"`
	SenderWallet string           `json:"sender_wallet,omitempty"`
	SenderName   string           `json:"sender_name,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	PaymentToken string           `json:"payment_token,omitempty"`
}
