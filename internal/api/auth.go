package api

import (
	"context"

	"github.com/fedha/ftk-go/internal/api/dto"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	if err := c.post(ctx, "auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a user or merchant account and returns a token.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	var resp dto.RegisterResponse
	if err := c.post(ctx, "auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyToken validates the stored bearer token and returns the profile
// it belongs to.
func (c *Client) VerifyToken(ctx context.Context) (*dto.ProfileResponse, error) {
	var resp dto.ProfileResponse
	if err := c.get(ctx, "auth/verify", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the signed-in user's profile.
func (c *Client) Profile(ctx context.Context) (*dto.ProfileResponse, error) {
	var resp dto.ProfileResponse
	if err := c.get(ctx, "auth/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the current token server-side.
func (c *Client) Logout(ctx context.Context) (*dto.APIResponse, error) {
	var resp dto.APIResponse
	if err := c.post(ctx, "auth/logout", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
