package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fedha/ftk-go/internal/api/dto"
)

// Notifications pages through the user's inbox, newest first.
func (c *Client) Notifications(ctx context.Context, limit, offset int) (*dto.NotificationsResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var resp dto.NotificationsResponse
	if err := c.get(ctx, "notifications", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, req dto.MarkReadRequest) (*dto.APIResponse, error) {
	var resp dto.APIResponse
	if err := c.post(ctx, "notifications/mark-read", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MarkAllNotificationsRead clears the unread count.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) (*dto.APIResponse, error) {
	var resp dto.APIResponse
	if err := c.post(ctx, "notifications/mark-all-read", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
