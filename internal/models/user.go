package models

import "strings"

// ==============================================
// USER MODEL
// ==============================================

// Account roles
const (
	RoleUser     = "user"
	RoleMerchant = "merchant"
)

// User represents the authenticated account as returned by the server.
// Users are immutable value objects: a login or profile refresh replaces
// the whole value, never individual fields.
type User struct {
	ID             int
	Username       string
	Email          string
	FullName       string
	Role           string
	MerchantSource string // empty for regular users
}

// IsMerchant reports whether the account role is "merchant".
// Role comparison is case-insensitive; the backend is not consistent
// about casing.
func (u User) IsMerchant() bool {
	return strings.EqualFold(u.Role, RoleMerchant)
}
