package dto

import "github.com/shopspring/decimal"

// ==============================================
// AUTH REQUEST DTOs
// ==============================================

// LoginRequest - username + password
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest - account_type is "user" or "merchant"; merchant
// registrations carry the company fields.
type RegisterRequest struct {
	AccountType string `json:"account_type"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
}

// ==============================================
// AUTH RESPONSE DTOs
// ==============================================

// UserDTO - user object embedded in auth responses
type UserDTO struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	MerchantSource string `json:"merchant_source,omitempty"`
}

// LoginResponse
type LoginResponse struct {
	APIResponse
	Token string   `json:"token,omitempty"`
	User  *UserDTO `json:"user,omitempty"`
}

// RegisterResponse - message may describe a welcome bonus credit
type RegisterResponse struct {
	APIResponse
	Token        string           `json:"token,omitempty"`
	User         *UserDTO         `json:"user,omitempty"`
	WelcomeBonus *decimal.Decimal `json:"welcomeBonus,omitempty"`
}

// ProfileResponse - auth/verify and auth/profile return the profile
// fields at the top level, not nested under "user".
type ProfileResponse struct {
	APIResponse
	ID             int    `json:"id,omitempty"`
	Username       string `json:"username,omitempty"`
	Email          string `json:"email,omitempty"`
	FullName       string `json:"full_name,omitempty"`
	Role           string `json:"role,omitempty"`
	MerchantSource string `json:"merchant_source,omitempty"`
}
