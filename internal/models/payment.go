package models

import "github.com/shopspring/decimal"

// ==============================================
// PAYMENT / NFC MODELS
// ==============================================

// Payment request statuses
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusExpired = "expired"
)

// Payment methods accepted at the point of sale.
const (
	PaymentMethodNFC = "nfc"
	PaymentMethodQR  = "qr"
)

// PaymentRequest is a merchant-created charge a customer can pay by
// scanning the QR data or entering the code.
type PaymentRequest struct {
	Code      string
	QRData    string
	Amount    decimal.Decimal
	Currency  string
	ExpiresAt string
}

// PaymentCheck is the result of verifying a payment request code before
// the customer commits to paying it.
type PaymentCheck struct {
	Valid        bool
	Amount       decimal.Decimal
	Currency     string
	MerchantName string
	Description  string
}

// PaymentRecord is one entry in a merchant's received-payments history.
type PaymentRecord struct {
	ID          int
	RequestCode string
	Amount      decimal.Decimal
	Currency    string
	Description string
	Status      string
	CreatedAt   string
	PaidAt      string
}

// NFCToken is a short-lived token a customer generates for a tap-to-pay
// handoff.
type NFCToken struct {
	PaymentToken string
	NFCData      string
	Amount       decimal.Decimal
	ExpiresAt    string
}

// NFCValidation is what the merchant terminal learns about a presented
// NFC payload before charging it.
type NFCValidation struct {
	Valid        bool
	SenderWallet string
	SenderName   string
	Amount       decimal.Decimal
	PaymentToken string
}
