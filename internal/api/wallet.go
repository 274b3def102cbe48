package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fedha/ftk-go/internal/api/dto"
)

// WalletBalance fetches the current wallet snapshot.
func (c *Client) WalletBalance(ctx context.Context) (*dto.WalletBalanceResponse, error) {
	var resp dto.WalletBalanceResponse
	if err := c.get(ctx, "wallet/balance", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Transactions pages through wallet history, newest first.
func (c *Client) Transactions(ctx context.Context, limit, offset int) (*dto.TransactionsResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var resp dto.TransactionsResponse
	if err := c.get(ctx, "wallet/transactions", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Transfer sends funds to another wallet address.
func (c *Client) Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResponse, error) {
	var resp dto.TransferResponse
	if err := c.post(ctx, "wallet/transfer", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PinStatus reports whether a transaction PIN is configured and whether
// it is currently locked out.
func (c *Client) PinStatus(ctx context.Context) (*dto.PinStatusResponse, error) {
	var resp dto.PinStatusResponse
	if err := c.get(ctx, "pin/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetPin sets the transaction PIN for the first time.
func (c *Client) SetPin(ctx context.Context, req dto.SetPinRequest) (*dto.APIResponse, error) {
	var resp dto.APIResponse
	if err := c.post(ctx, "pin/set", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangePin replaces an existing transaction PIN.
func (c *Client) ChangePin(ctx context.Context, req dto.ChangePinRequest) (*dto.APIResponse, error) {
	var resp dto.APIResponse
	if err := c.post(ctx, "pin/change", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyPin checks a PIN ahead of an authorization-gated action.
func (c *Client) VerifyPin(ctx context.Context, req dto.VerifyPinRequest) (*dto.APIResponse, error) {
	var resp dto.APIResponse
	if err := c.post(ctx, "pin/verify", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
