package api

import (
	"context"

	"github.com/fedha/ftk-go/internal/api/dto"
)

// MerchantDashboard fetches the merchant overview payload.
func (c *Client) MerchantDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	var resp dto.DashboardResponse
	if err := c.get(ctx, "merchant/dashboard", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MerchantSettings fetches the merchant profile and acceptance toggles.
func (c *Client) MerchantSettings(ctx context.Context) (*dto.MerchantSettingsResponse, error) {
	var resp dto.MerchantSettingsResponse
	if err := c.get(ctx, "merchant/settings", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateMerchantSettings applies a partial settings update.
func (c *Client) UpdateMerchantSettings(ctx context.Context, req dto.MerchantSettingsUpdate) (*dto.APIResponse, error) {
	var resp dto.APIResponse
	if err := c.post(ctx, "merchant/settings", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
