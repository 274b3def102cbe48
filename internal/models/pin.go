package models

// PinStatus is a transient snapshot of the transaction PIN state, used
// to decide whether to prompt for setup or show a lockout notice. It is
// not a stored entity.
type PinStatus struct {
	HasPin      bool
	Locked      bool
	LockedUntil string
}

// MerchantSettings mirrors the merchant profile and acceptance toggles.
type MerchantSettings struct {
	MerchantName   string
	MerchantSource string
	Email          string
	Phone          string
	Status         string
	Logo           string
	AcceptFTK      bool
	AcceptCard     bool
	NFCEnabled     bool
	QREnabled      bool
}
