package dto

import "github.com/shopspring/decimal"

// ==============================================
// MERCHANT DASHBOARD DTOs
// ==============================================

// MerchantInfo - merchant identity block of the dashboard payload
type MerchantInfo struct {
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Source string `json:"source,omitempty"`
}

// WalletInfo - wallet block of the dashboard payload
type WalletInfo struct {
	Balance *decimal.Decimal `json:"balance,omitempty"`
	Address string           `json:"address,omitempty"`
}

// PeriodStats - sit under stats.today / stats.week / stats.month
type PeriodStats struct {
	Amount       decimal.Decimal `json:"amount"`
	Transactions int             `json:"transactions"`
}

// StatsInfo
type StatsInfo struct {
	Today   *PeriodStats `json:"today,omitempty"`
	Week    *PeriodStats `json:"week,omitempty"`
	Month   *PeriodStats `json:"month,omitempty"`
	Pending int          `json:"pending,omitempty"`
}

// RecentPayment - one row of the dashboard's recent payments
type RecentPayment struct {
	ID        int             `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from,omitempty"`
	CreatedAt string          `json:"created_at,omitempty"`
}

// DashboardResponse - the field is camelCase on the wire, matching the
// backend. recentPayments may be null; callers must treat that as an
// empty list.
type DashboardResponse struct {
	APIResponse
	Merchant       *MerchantInfo   `json:"merchant,omitempty"`
	Wallet         *WalletInfo     `json:"wallet,omitempty"`
	Stats          *StatsInfo      `json:"stats,omitempty"`
	RecentPayments []RecentPayment `json:"recentPayments,omitempty"`
}

// ==============================================
// MERCHANT SETTINGS DTOs
// ==============================================

// MerchantSettingsResponse - settings fields arrive at the top level,
// not nested.
type MerchantSettingsResponse struct {
	APIResponse
	MerchantName   string `json:"merchant_name,omitempty"`
	MerchantSource string `json:"merchant_source,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Status         string `json:"status,omitempty"`
	Logo           string `json:"logo,omitempty"`
	AcceptFtk      bool   `json:"accept_ftk"`
	AcceptCard     bool   `json:"accept_card"`
	NfcEnabled     bool   `json:"nfc_enabled"`
	QrEnabled      bool   `json:"qr_enabled"`
}

// MerchantSettingsUpdate - POST body; pointers so unset toggles are
// omitted rather than sent as false.
type MerchantSettingsUpdate struct {
	MerchantName string `json:"merchant_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Logo         string `json:"logo,omitempty"`
	AcceptFtk    *bool  `json:"accept_ftk,omitempty"`
	AcceptCard   *bool  `json:"accept_card,omitempty"`
	NfcEnabled   *bool  `json:"nfc_enabled,omitempty"`
	QrEnabled    *bool  `json:"qr_enabled,omitempty"`
}
