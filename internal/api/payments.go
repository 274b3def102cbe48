package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fedha/ftk-go/internal/api/dto"
)

// CreatePaymentRequest opens a charge a customer can pay by code or QR.
func (c *Client) CreatePaymentRequest(ctx context.Context, req dto.PaymentRequestBody) (*dto.PaymentRequestResponse, error) {
	var resp dto.PaymentRequestResponse
	if err := c.post(ctx, "payments/create-request", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProcessPayment pays an open payment request by its code.
func (c *Client) ProcessPayment(ctx context.Context, req dto.ProcessPaymentRequest) (*dto.TransferResponse, error) {
	var resp dto.TransferResponse
	if err := c.post(ctx, "payments/process", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyPayment checks a payment request code before paying it.
func (c *Client) VerifyPayment(ctx context.Context, code string) (*dto.PaymentVerifyResponse, error) {
	var resp dto.PaymentVerifyResponse
	if err := c.get(ctx, "payments/verify/"+url.PathEscape(code), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PaymentHistory lists the merchant's received payments.
func (c *Client) PaymentHistory(ctx context.Context, limit int) (*dto.PaymentHistoryResponse, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var resp dto.PaymentHistoryResponse
	if err := c.get(ctx, "payments/history", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProcessPosPayment charges a customer token presented at the terminal.
func (c *Client) ProcessPosPayment(ctx context.Context, req dto.PosPaymentRequest) (*dto.TransferResponse, error) {
	var resp dto.TransferResponse
	if err := c.post(ctx, "payments/pos", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterNfcDevice enrolls this device for tap-to-pay.
func (c *Client) RegisterNfcDevice(ctx context.Context, req dto.NfcRegisterDeviceRequest) (*dto.APIResponse, error) {
	var resp dto.APIResponse
	if err := c.post(ctx, "nfc/register-device", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateNfcToken creates a short-lived payment token for a tap.
func (c *Client) GenerateNfcToken(ctx context.Context, req dto.NfcGenerateTokenRequest) (*dto.NfcTokenResponse, error) {
	var resp dto.NfcTokenResponse
	if err := c.post(ctx, "nfc/generate-token", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ValidateNfcPayment resolves a tapped payload to its sender and amount.
func (c *Client) ValidateNfcPayment(ctx context.Context, req dto.NfcValidateRequest) (*dto.NfcValidationResponse, error) {
	var resp dto.NfcValidationResponse
	if err := c.post(ctx, "nfc/validate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
