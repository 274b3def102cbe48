package api

import (
	"context"
	"net/url"

	"github.com/fedha/ftk-go/internal/api/dto"
)

// CreateTransferRequest asks another user for money.
func (c *Client) CreateTransferRequest(ctx context.Context, req dto.TransferRequestBody) (*dto.TransferRequestResponse, error) {
	var resp dto.TransferRequestResponse
	if err := c.post(ctx, "transfer-requests/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PendingTransferRequests lists money requests awaiting this user's
// approval.
func (c *Client) PendingTransferRequests(ctx context.Context) (*dto.TransferRequestsListResponse, error) {
	var resp dto.TransferRequestsListResponse
	if err := c.get(ctx, "transfer-requests/pending", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ApproveTransferRequest pays a pending request, authorized by PIN.
func (c *Client) ApproveTransferRequest(ctx context.Context, req dto.ApproveTransferRequest) (*dto.TransferResponse, error) {
	var resp dto.TransferResponse
	if err := c.post(ctx, "transfer-requests/approve", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RejectTransferRequest declines a pending request.
func (c *Client) RejectTransferRequest(ctx context.Context, req dto.RejectTransferRequest) (*dto.APIResponse, error) {
	var resp dto.APIResponse
	if err := c.post(ctx, "transfer-requests/reject", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchUsers finds accounts to direct a transfer request at.
func (c *Client) SearchUsers(ctx context.Context, q string) (*dto.UserSearchResponse, error) {
	query := url.Values{}
	query.Set("q", q)

	var resp dto.UserSearchResponse
	if err := c.get(ctx, "transfer-requests/search-users", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
