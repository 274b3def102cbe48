package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fedha/ftk-go/internal/api"
	"github.com/fedha/ftk-go/internal/api/dto"
	"github.com/fedha/ftk-go/internal/models"
)

// WalletRepository covers everything behind the authenticated session:
// wallet, transactions, PIN, payments, NFC, merchant surface,
// notifications and transfer requests. Every method applies the same
// normalization; only the default messages and the extractors differ.
type WalletRepository struct {
	api *api.Client
	log *logrus.Entry
}

func NewWalletRepository(client *api.Client, logger *logrus.Logger) *WalletRepository {
	return &WalletRepository{
		api: client,
		log: logger.WithField("repo", "wallet"),
	}
}

// ==============================================
// WALLET
// ==============================================

// Balance fetches a fresh wallet snapshot. Nothing is cached; the
// caller decides when to refetch.
func (r *WalletRepository) Balance(ctx context.Context) (*models.Wallet, error) {
	msgs := Messages{Action: "Wallet", Default: "Failed to load wallet"}
	return call(r.log, msgs,
		func() (*dto.WalletBalanceResponse, error) { return r.api.WalletBalance(ctx) },
		func(resp *dto.WalletBalanceResponse) (*models.Wallet, error) {
			currency := resp.Currency
			if currency == "" {
				currency = models.DefaultCurrency
			}
			return &models.Wallet{
				Address:        resp.WalletAddress,
				Balance:        dec(resp.Balance),
				LockedBalance:  dec(resp.LockedBalance),
				LifetimeEarned: dec(resp.LifetimeEarned),
				LifetimeSpent:  dec(resp.LifetimeSpent),
				EntityName:     resp.EntityName,
				EntityType:     resp.EntityType,
				Currency:       currency,
			}, nil
		})
}

// Transactions pages through wallet history.
func (r *WalletRepository) Transactions(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	msgs := Messages{Action: "Transactions", Default: "Failed to load transactions"}
	return call(r.log, msgs,
		func() (*dto.TransactionsResponse, error) { return r.api.Transactions(ctx, limit, offset) },
		func(resp *dto.TransactionsResponse) ([]models.Transaction, error) {
			out := make([]models.Transaction, 0, len(resp.Transactions))
			for _, t := range resp.Transactions {
				out = append(out, transactionFromDTO(t))
			}
			return out, nil
		})
}

// TransferParams is the transfer form.
type TransferParams struct {
	RecipientWallet string
	Amount          decimal.Decimal
	Description     string
	Pin             string
}

// Transfer sends funds. The receipt's NewBalance is for optimistic
// display only; call Balance to refresh authoritatively.
func (r *WalletRepository) Transfer(ctx context.Context, p TransferParams) (*models.TransferReceipt, error) {
	msgs := Messages{Action: "Transfer", Default: "Transfer failed"}
	return call(r.log, msgs,
		func() (*dto.TransferResponse, error) {
			return r.api.Transfer(ctx, dto.TransferRequest{
				RecipientWallet: p.RecipientWallet,
				Amount:          p.Amount,
				Description:     p.Description,
				Pin:             p.Pin,
			})
		},
		receiptExtractor)
}

// ==============================================
// PIN
// ==============================================

// PinStatus reports whether a PIN is set and whether it is locked out.
// Failures surface as failures; only an explicit has_pin=false means
// the user needs PIN setup.
func (r *WalletRepository) PinStatus(ctx context.Context) (*models.PinStatus, error) {
	msgs := Messages{Action: "PIN status", Default: "Failed to get PIN status"}
	return call(r.log, msgs,
		func() (*dto.PinStatusResponse, error) { return r.api.PinStatus(ctx) },
		func(resp *dto.PinStatusResponse) (*models.PinStatus, error) {
			return &models.PinStatus{
				HasPin:      resp.HasPin,
				Locked:      resp.IsLocked,
				LockedUntil: resp.LockedUntil,
			}, nil
		})
}

// SetPin sets the transaction PIN for the first time.
func (r *WalletRepository) SetPin(ctx context.Context, pin, confirmPin string) (string, error) {
	msgs := Messages{Action: "Set PIN", Default: "Failed to set PIN"}
	return ackCall(r.log, msgs, func() (*dto.APIResponse, error) {
		return r.api.SetPin(ctx, dto.SetPinRequest{Pin: pin, ConfirmPin: confirmPin})
	})
}

// ChangePin replaces the current PIN.
func (r *WalletRepository) ChangePin(ctx context.Context, currentPin, newPin, confirmPin string) (string, error) {
	msgs := Messages{Action: "Change PIN", Default: "Failed to change PIN"}
	return ackCall(r.log, msgs, func() (*dto.APIResponse, error) {
		return r.api.ChangePin(ctx, dto.ChangePinRequest{
			CurrentPin: currentPin,
			NewPin:     newPin,
			ConfirmPin: confirmPin,
		})
	})
}

// VerifyPin checks the PIN ahead of a gated action.
func (r *WalletRepository) VerifyPin(ctx context.Context, pin string) (string, error) {
	msgs := Messages{Action: "PIN verification", Default: "Invalid PIN"}
	return ackCall(r.log, msgs, func() (*dto.APIResponse, error) {
		return r.api.VerifyPin(ctx, dto.VerifyPinRequest{Pin: pin})
	})
}

// ==============================================
// PAYMENTS
// ==============================================

// CreatePaymentRequest opens a merchant charge payable by code or QR.
func (r *WalletRepository) CreatePaymentRequest(ctx context.Context, amount decimal.Decimal, currency, description string) (*models.PaymentRequest, error) {
	if currency == "" {
		currency = models.DefaultCurrency
	}
	msgs := Messages{Action: "Payment request", Default: "Failed to create payment request"}
	return call(r.log, msgs,
		func() (*dto.PaymentRequestResponse, error) {
			return r.api.CreatePaymentRequest(ctx, dto.PaymentRequestBody{
				Amount:      amount,
				Currency:    currency,
				Description: description,
			})
		},
		func(resp *dto.PaymentRequestResponse) (*models.PaymentRequest, error) {
			return &models.PaymentRequest{
				Code:      resp.RequestCode,
				QRData:    resp.QRData,
				Amount:    dec(resp.Amount),
				Currency:  resp.Currency,
				ExpiresAt: resp.ExpiresAt,
			}, nil
		})
}

// PayPaymentRequest settles an open merchant charge by its code,
// authorized by PIN.
func (r *WalletRepository) PayPaymentRequest(ctx context.Context, code, pin string) (*models.TransferReceipt, error) {
	msgs := Messages{Action: "Payment", Default: "Payment failed"}
	return call(r.log, msgs,
		func() (*dto.TransferResponse, error) {
			return r.api.ProcessPayment(ctx, dto.ProcessPaymentRequest{
				RequestCode: code,
				Pin:         pin,
			})
		},
		receiptExtractor)
}

// VerifyPayment resolves a payment code before the customer commits.
func (r *WalletRepository) VerifyPayment(ctx context.Context, code string) (*models.PaymentCheck, error) {
	msgs := Messages{Action: "Payment verification", Default: "Failed to verify payment"}
	return call(r.log, msgs,
		func() (*dto.PaymentVerifyResponse, error) { return r.api.VerifyPayment(ctx, code) },
		func(resp *dto.PaymentVerifyResponse) (*models.PaymentCheck, error) {
			return &models.PaymentCheck{
				Valid:        resp.Valid,
				Amount:       dec(resp.Amount),
				Currency:     resp.Currency,
				MerchantName: resp.MerchantName,
				Description:  resp.Description,
			}, nil
		})
}

// PaymentHistory lists the merchant's received payments.
func (r *WalletRepository) PaymentHistory(ctx context.Context, limit int) ([]models.PaymentRecord, error) {
	msgs := Messages{Action: "Payment history", Default: "Failed to load payment history"}
	return call(r.log, msgs,
		func() (*dto.PaymentHistoryResponse, error) { return r.api.PaymentHistory(ctx, limit) },
		func(resp *dto.PaymentHistoryResponse) ([]models.PaymentRecord, error) {
			out := make([]models.PaymentRecord, 0, len(resp.Payments))
			for _, p := range resp.Payments {
				out = append(out, models.PaymentRecord{
					ID:          p.ID,
					RequestCode: p.RequestCode,
					Amount:      p.Amount,
					Currency:    p.Currency,
					Description: p.Description,
					Status:      p.Status,
					CreatedAt:   p.CreatedAt,
					PaidAt:      p.PaidAt,
				})
			}
			return out, nil
		})
}

// ProcessPosPayment charges a presented NFC/QR token at the terminal.
func (r *WalletRepository) ProcessPosPayment(ctx context.Context, senderWallet string, amount decimal.Decimal, paymentToken, method string) (*models.TransferReceipt, error) {
	msgs := Messages{Action: "Payment", Default: "Payment failed"}
	return call(r.log, msgs,
		func() (*dto.TransferResponse, error) {
			return r.api.ProcessPosPayment(ctx, dto.PosPaymentRequest{
				SenderWallet: senderWallet,
				Amount:       amount,
				PaymentToken: paymentToken,
				Method:       method,
			})
		},
		receiptExtractor)
}

// ==============================================
// NFC
// ==============================================

// RegisterNfcDevice enrolls a device for tap-to-pay.
func (r *WalletRepository) RegisterNfcDevice(ctx context.Context, deviceID, deviceName string) (string, error) {
	msgs := Messages{Action: "Device registration", Default: "Failed to register device"}
	return ackCall(r.log, msgs, func() (*dto.APIResponse, error) {
		return r.api.RegisterNfcDevice(ctx, dto.NfcRegisterDeviceRequest{
			DeviceID:   deviceID,
			DeviceName: deviceName,
		})
	})
}

// GenerateNfcToken creates a short-lived token authorizing one tap.
func (r *WalletRepository) GenerateNfcToken(ctx context.Context, amount decimal.Decimal) (*models.NFCToken, error) {
	msgs := Messages{Action: "NFC token", Default: "Failed to generate payment token"}
	return call(r.log, msgs,
		func() (*dto.NfcTokenResponse, error) {
			return r.api.GenerateNfcToken(ctx, dto.NfcGenerateTokenRequest{Amount: amount})
		},
		func(resp *dto.NfcTokenResponse) (*models.NFCToken, error) {
			return &models.NFCToken{
				PaymentToken: resp.PaymentToken,
				NFCData:      resp.NfcData,
				Amount:       dec(resp.Amount),
				ExpiresAt:    resp.ExpiresAt,
			}, nil
		})
}

// ValidateNfcPayment resolves a tapped payload to sender and amount.
func (r *WalletRepository) ValidateNfcPayment(ctx context.Context, nfcData string) (*models.NFCValidation, error) {
	msgs := Messages{Action: "NFC validation", Default: "Invalid NFC payment"}
	return call(r.log, msgs,
		func() (*dto.NfcValidationResponse, error) {
			return r.api.ValidateNfcPayment(ctx, dto.NfcValidateRequest{NfcData: nfcData})
		},
		func(resp *dto.NfcValidationResponse) (*models.NFCValidation, error) {
			return &models.NFCValidation{
				Valid:        resp.Valid,
				SenderWallet: resp.SenderWallet,
				SenderName:   resp.SenderName,
				Amount:       dec(resp.Amount),
				PaymentToken: resp.PaymentToken,
			}, nil
		})
}

// ==============================================
// MERCHANT
// ==============================================

// Dashboard assembles the merchant overview from the richer dashboard
// payload. A null recentPayments list becomes an empty slice, never an
// error.
func (r *WalletRepository) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	msgs := Messages{Action: "Dashboard", Default: "Failed to load dashboard"}
	return call(r.log, msgs,
		func() (*dto.DashboardResponse, error) { return r.api.MerchantDashboard(ctx) },
		func(resp *dto.DashboardResponse) (*models.DashboardStats, error) {
			stats := &models.DashboardStats{
				RecentTransactions: []models.Transaction{},
			}
			if resp.Stats != nil {
				if resp.Stats.Today != nil {
					stats.TodaySales = resp.Stats.Today.Amount
					stats.TotalTransactions = resp.Stats.Today.Transactions
				}
				stats.PendingPayments = resp.Stats.Pending
			}
			if resp.Wallet != nil {
				stats.WalletBalance = dec(resp.Wallet.Balance)
			}
			for _, p := range resp.RecentPayments {
				from := p.From
				if from == "" {
					from = "Customer"
				}
				stats.RecentTransactions = append(stats.RecentTransactions, models.Transaction{
					ID:           p.ID,
					Direction:    models.DirectionIncoming,
					Type:         models.TransactionTypePayment,
					Amount:       p.Amount,
					Counterparty: p.From,
					Description:  "Payment from " + from,
					Status:       models.TransactionStatusCompleted,
					CreatedAt:    p.CreatedAt,
					CompletedAt:  p.CreatedAt,
				})
			}
			return stats, nil
		})
}

// MerchantSettings fetches the merchant profile and toggles.
func (r *WalletRepository) MerchantSettings(ctx context.Context) (*models.MerchantSettings, error) {
	msgs := Messages{Action: "Settings", Default: "Failed to load settings"}
	return call(r.log, msgs,
		func() (*dto.MerchantSettingsResponse, error) { return r.api.MerchantSettings(ctx) },
		func(resp *dto.MerchantSettingsResponse) (*models.MerchantSettings, error) {
			return &models.MerchantSettings{
				MerchantName:   resp.MerchantName,
				MerchantSource: resp.MerchantSource,
				Email:          resp.Email,
				Phone:          resp.Phone,
				Status:         resp.Status,
				Logo:           resp.Logo,
				AcceptFTK:      resp.AcceptFtk,
				AcceptCard:     resp.AcceptCard,
				NFCEnabled:     resp.NfcEnabled,
				QREnabled:      resp.QrEnabled,
			}, nil
		})
}

// UpdateMerchantSettings applies a partial settings update.
func (r *WalletRepository) UpdateMerchantSettings(ctx context.Context, update dto.MerchantSettingsUpdate) (string, error) {
	msgs := Messages{Action: "Settings update", Default: "Failed to update settings"}
	return ackCall(r.log, msgs, func() (*dto.APIResponse, error) {
		return r.api.UpdateMerchantSettings(ctx, update)
	})
}

// ==============================================
// NOTIFICATIONS
// ==============================================

// Notifications pages through the inbox and returns the unread count.
func (r *WalletRepository) Notifications(ctx context.Context, limit, offset int) ([]models.Notification, int, error) {
	type page struct {
		items  []models.Notification
		unread int
	}
	msgs := Messages{Action: "Notifications", Default: "Failed to load notifications"}
	out, err := call(r.log, msgs,
		func() (*dto.NotificationsResponse, error) { return r.api.Notifications(ctx, limit, offset) },
		func(resp *dto.NotificationsResponse) (page, error) {
			items := make([]models.Notification, 0, len(resp.Notifications))
			for _, n := range resp.Notifications {
				items = append(items, models.Notification{
					ID:        n.ID,
					Type:      n.NotificationType,
					Title:     n.Title,
					Message:   n.Message,
					Icon:      n.Icon,
					Link:      n.Link,
					Read:      n.IsRead,
					CreatedAt: n.CreatedAt,
				})
			}
			return page{items: items, unread: resp.UnreadCount}, nil
		})
	if err != nil {
		return nil, 0, err
	}
	return out.items, out.unread, nil
}

// MarkNotificationRead marks one notification as read.
func (r *WalletRepository) MarkNotificationRead(ctx context.Context, id int) (string, error) {
	msgs := Messages{Action: "Mark read", Default: "Failed to update notification"}
	return ackCall(r.log, msgs, func() (*dto.APIResponse, error) {
		return r.api.MarkNotificationRead(ctx, dto.MarkReadRequest{NotificationID: id})
	})
}

// MarkAllNotificationsRead clears the unread count.
func (r *WalletRepository) MarkAllNotificationsRead(ctx context.Context) (string, error) {
	msgs := Messages{Action: "Mark all read", Default: "Failed to update notifications"}
	return ackCall(r.log, msgs, func() (*dto.APIResponse, error) {
		return r.api.MarkAllNotificationsRead(ctx)
	})
}

// ==============================================
// TRANSFER REQUESTS
// ==============================================

// CreateTransferRequest asks another user for money.
func (r *WalletRepository) CreateTransferRequest(ctx context.Context, recipientID int, amount decimal.Decimal, description string) (*models.TransferRequestCreated, error) {
	msgs := Messages{Action: "Transfer request", Default: "Failed to create request"}
	return call(r.log, msgs,
		func() (*dto.TransferRequestResponse, error) {
			return r.api.CreateTransferRequest(ctx, dto.TransferRequestBody{
				RecipientID: recipientID,
				Amount:      amount,
				Description: description,
			})
		},
		func(resp *dto.TransferRequestResponse) (*models.TransferRequestCreated, error) {
			return &models.TransferRequestCreated{ID: resp.RequestID, Code: resp.RequestCode}, nil
		})
}

// PendingTransferRequests lists money requests awaiting this user.
func (r *WalletRepository) PendingTransferRequests(ctx context.Context) ([]models.TransferRequestItem, error) {
	msgs := Messages{Action: "Requests", Default: "Failed to load requests"}
	return call(r.log, msgs,
		func() (*dto.TransferRequestsListResponse, error) { return r.api.PendingTransferRequests(ctx) },
		func(resp *dto.TransferRequestsListResponse) ([]models.TransferRequestItem, error) {
			out := make([]models.TransferRequestItem, 0, len(resp.Requests))
			for _, item := range resp.Requests {
				out = append(out, models.TransferRequestItem{
					ID:              item.ID,
					Code:            item.RequestCode,
					RequesterName:   item.RequesterName,
					RequesterWallet: item.RequesterWallet,
					Amount:          item.Amount,
					Description:     item.Description,
					Status:          item.Status,
					CreatedAt:       item.CreatedAt,
					ExpiresAt:       item.ExpiresAt,
				})
			}
			return out, nil
		})
}

// ApproveTransferRequest pays a pending request, authorized by PIN.
func (r *WalletRepository) ApproveTransferRequest(ctx context.Context, requestID int, pin string) (*models.TransferReceipt, error) {
	msgs := Messages{Action: "Approval", Default: "Failed to approve request"}
	return call(r.log, msgs,
		func() (*dto.TransferResponse, error) {
			return r.api.ApproveTransferRequest(ctx, dto.ApproveTransferRequest{
				RequestID: requestID,
				Pin:       pin,
			})
		},
		receiptExtractor)
}

// RejectTransferRequest declines a pending request.
func (r *WalletRepository) RejectTransferRequest(ctx context.Context, requestID int) (string, error) {
	msgs := Messages{Action: "Rejection", Default: "Failed to reject request"}
	return ackCall(r.log, msgs, func() (*dto.APIResponse, error) {
		return r.api.RejectTransferRequest(ctx, dto.RejectTransferRequest{RequestID: requestID})
	})
}

// SearchUsers finds accounts to direct a transfer request at.
func (r *WalletRepository) SearchUsers(ctx context.Context, q string) ([]models.SearchedUser, error) {
	msgs := Messages{Action: "Search", Default: "Search failed"}
	return call(r.log, msgs,
		func() (*dto.UserSearchResponse, error) { return r.api.SearchUsers(ctx, q) },
		func(resp *dto.UserSearchResponse) ([]models.SearchedUser, error) {
			out := make([]models.SearchedUser, 0, len(resp.Users))
			for _, u := range resp.Users {
				out = append(out, models.SearchedUser{
					ID:            u.ID,
					Username:      u.Username,
					FullName:      u.FullName,
					WalletAddress: u.WalletAddress,
				})
			}
			return out, nil
		})
}

// ==============================================
// HELPERS
// ==============================================

// ackCall normalizes operations whose only useful payload is the
// server's message.
func ackCall(log *logrus.Entry, msgs Messages, invoke func() (*dto.APIResponse, error)) (string, error) {
	return call(log, msgs, invoke,
		func(resp *dto.APIResponse) (string, error) { return resp.Message, nil })
}

func receiptExtractor(resp *dto.TransferResponse) (*models.TransferReceipt, error) {
	return &models.TransferReceipt{
		TransactionHash: resp.TransactionHash,
		Amount:          dec(resp.Amount),
		Fee:             dec(resp.Fee),
		Recipient:       resp.Recipient,
		NewBalance:      dec(resp.NewBalance),
		Message:         resp.Message,
	}, nil
}

func transactionFromDTO(t dto.TransactionDTO) models.Transaction {
	return models.Transaction{
		ID:           t.ID,
		Hash:         t.Hash,
		Direction:    t.Type,
		Type:         t.TransactionType,
		Amount:       t.Amount,
		Fee:          dec(t.Fee),
		Counterparty: t.Counterparty,
		Description:  t.Description,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt,
		CompletedAt:  t.CompletedAt,
	}
}

func dec(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
