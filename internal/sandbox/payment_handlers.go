package sandbox

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fedha/ftk-go/internal/api/dto"
	"github.com/fedha/ftk-go/internal/models"
)

// nfcDataPrefix frames the payload written to an NFC tag or QR code so
// the terminal can tell it apart from arbitrary scans.
const nfcDataPrefix = "FTKPAY:"

func (s *Server) handleCreatePaymentRequest(c *gin.Context) {
	var req dto.PaymentRequestBody
	if err := c.ShouldBindJSON(&req); err != nil || !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "A positive amount is required"})
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	merchant := s.current(c)
	if merchant.Role != models.RoleMerchant {
		c.JSON(http.StatusForbidden, dto.APIResponse{Message: "Merchant account required"})
		return
	}

	now := time.Now()
	p := s.store.addPayment(paymentRecord{
		Code:        "PR-" + shortCode(),
		MerchantID:  merchant.ID,
		Amount:      req.Amount,
		Currency:    currency,
		Description: req.Description,
		Status:      models.PaymentStatusPending,
		CreatedAt:   now,
		ExpiresAt:   now.Add(paymentRequestTTL),
	})

	c.JSON(http.StatusOK, dto.PaymentRequestResponse{
		APIResponse: dto.APIResponse{Success: true, Message: "Payment request created"},
		RequestCode: p.Code,
		QRData:      nfcDataPrefix + p.Code,
		Amount:      &p.Amount,
		Currency:    p.Currency,
		ExpiresAt:   p.ExpiresAt.Format(time.RFC3339),
	})
}

func (s *Server) handleProcessPayment(c *gin.Context) {
	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RequestCode == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Request code is required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	customer := s.current(c)
	if msg, ok := s.checkPin(customer, req.Pin); !ok {
		c.JSON(http.StatusOK, dto.APIResponse{Message: msg})
		return
	}

	p := s.store.paymentByCode(req.RequestCode)
	if p == nil {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Payment request not found"})
		return
	}
	if p.Status == models.PaymentStatusPending && time.Now().After(p.ExpiresAt) {
		p.Status = models.PaymentStatusExpired
	}
	if p.Status != models.PaymentStatusPending {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Payment request is " + p.Status})
		return
	}

	merchant := s.store.accounts[p.MerchantID]
	if merchant.ID == customer.ID {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Cannot pay your own payment request"})
		return
	}
	if customer.Wallet.Balance.LessThan(p.Amount) {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Insufficient balance"})
		return
	}

	now := time.Now()
	hash := newTransactionHash()
	merchantName := merchant.Settings.Name
	if merchantName == "" {
		merchantName = merchant.FullName
	}

	customer.Wallet.Balance = customer.Wallet.Balance.Sub(p.Amount)
	customer.Wallet.LifetimeSpent = customer.Wallet.LifetimeSpent.Add(p.Amount)
	merchant.Wallet.Balance = merchant.Wallet.Balance.Add(p.Amount)
	merchant.Wallet.LifetimeEarned = merchant.Wallet.LifetimeEarned.Add(p.Amount)
	p.Status = models.PaymentStatusPaid
	p.PaidAt = now

	description := p.Description
	if description == "" {
		description = "Payment " + p.Code
	}
	s.store.addTransaction(txRecord{
		UserID:       customer.ID,
		Hash:         hash,
		Direction:    models.DirectionOutgoing,
		Type:         models.TransactionTypePayment,
		Amount:       p.Amount,
		Counterparty: merchantName,
		Description:  description,
		Status:       models.TransactionStatusCompleted,
		CreatedAt:    now,
		CompletedAt:  now,
	})
	s.store.addTransaction(txRecord{
		UserID:       merchant.ID,
		Hash:         hash,
		Direction:    models.DirectionIncoming,
		Type:         models.TransactionTypePayment,
		Amount:       p.Amount,
		Counterparty: customer.FullName,
		Description:  description,
		Status:       models.TransactionStatusCompleted,
		CreatedAt:    now,
		CompletedAt:  now,
	})
	s.store.notify(merchant.ID, "payment", "Payment received",
		p.Amount.String()+" FTK received from "+customer.FullName)

	c.JSON(http.StatusOK, dto.TransferResponse{
		APIResponse:     dto.APIResponse{Success: true, Message: "Payment completed"},
		TransactionHash: hash,
		Amount:          &p.Amount,
		Recipient:       merchantName,
		NewBalance:      &customer.Wallet.Balance,
	})
}

func (s *Server) handleVerifyPayment(c *gin.Context) {
	code := c.Param("code")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	p := s.store.paymentByCode(code)
	if p == nil {
		c.JSON(http.StatusOK, dto.PaymentVerifyResponse{
			APIResponse: dto.APIResponse{Message: "Payment request not found"},
		})
		return
	}
	if p.Status == models.PaymentStatusPending && time.Now().After(p.ExpiresAt) {
		p.Status = models.PaymentStatusExpired
	}
	if p.Status != models.PaymentStatusPending {
		c.JSON(http.StatusOK, dto.PaymentVerifyResponse{
			APIResponse: dto.APIResponse{Message: "Payment request is " + p.Status},
		})
		return
	}

	merchantName := ""
	if m := s.store.accounts[p.MerchantID]; m != nil {
		merchantName = m.Settings.Name
		if merchantName == "" {
			merchantName = m.FullName
		}
	}

	c.JSON(http.StatusOK, dto.PaymentVerifyResponse{
		APIResponse:  dto.APIResponse{Success: true},
		Valid:        true,
		Amount:       &p.Amount,
		Currency:     p.Currency,
		MerchantName: merchantName,
		Description:  p.Description,
	})
}

func (s *Server) handlePaymentHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 {
		limit = 50
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	merchant := s.current(c)
	if merchant.Role != models.RoleMerchant {
		c.JSON(http.StatusForbidden, dto.APIResponse{Message: "Merchant account required"})
		return
	}

	out := make([]dto.PaymentRecordDTO, 0, limit)
	for i := len(s.store.payments) - 1; i >= 0 && len(out) < limit; i-- {
		p := s.store.payments[i]
		if p.MerchantID != merchant.ID {
			continue
		}
		d := dto.PaymentRecordDTO{
			ID:          p.ID,
			RequestCode: p.Code,
			Amount:      p.Amount,
			Currency:    p.Currency,
			Description: p.Description,
			Status:      p.Status,
			CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		}
		if !p.PaidAt.IsZero() {
			d.PaidAt = p.PaidAt.Format(time.RFC3339)
		}
		out = append(out, d)
	}

	c.JSON(http.StatusOK, dto.PaymentHistoryResponse{
		APIResponse: dto.APIResponse{Success: true},
		Payments:    out,
	})
}

func (s *Server) handlePosPayment(c *gin.Context) {
	var req dto.PosPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PaymentToken == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Payment token is required"})
		return
	}
	if req.Method != models.PaymentMethodNFC && req.Method != models.PaymentMethodQR {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Method must be nfc or qr"})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "A positive amount is required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	merchant := s.current(c)
	if merchant.Role != models.RoleMerchant {
		c.JSON(http.StatusForbidden, dto.APIResponse{Message: "Merchant account required"})
		return
	}

	tok := s.store.nfcTokens[req.PaymentToken]
	if tok == nil || tok.Used {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Payment token is invalid or already used"})
		return
	}
	if time.Now().After(tok.ExpiresAt) {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Payment token has expired"})
		return
	}

	customer := s.store.accounts[tok.UserID]
	if customer == nil || (req.SenderWallet != "" && customer.Wallet.Address != req.SenderWallet) {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Sender wallet does not match the payment token"})
		return
	}
	if req.Amount.GreaterThan(tok.Amount) {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Charge exceeds the authorized amount"})
		return
	}
	if customer.Wallet.Balance.LessThan(req.Amount) {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Insufficient balance"})
		return
	}

	tok.Used = true
	now := time.Now()
	hash := newTransactionHash()

	merchantName := merchant.Settings.Name
	if merchantName == "" {
		merchantName = merchant.FullName
	}

	customer.Wallet.Balance = customer.Wallet.Balance.Sub(req.Amount)
	customer.Wallet.LifetimeSpent = customer.Wallet.LifetimeSpent.Add(req.Amount)
	merchant.Wallet.Balance = merchant.Wallet.Balance.Add(req.Amount)
	merchant.Wallet.LifetimeEarned = merchant.Wallet.LifetimeEarned.Add(req.Amount)

	s.store.addTransaction(txRecord{
		UserID:       customer.ID,
		Hash:         hash,
		Direction:    models.DirectionOutgoing,
		Type:         models.TransactionTypePayment,
		Amount:       req.Amount,
		Counterparty: merchantName,
		Description:  "POS payment",
		Status:       models.TransactionStatusCompleted,
		CreatedAt:    now,
		CompletedAt:  now,
	})
	s.store.addTransaction(txRecord{
		UserID:       merchant.ID,
		Hash:         hash,
		Direction:    models.DirectionIncoming,
		Type:         models.TransactionTypePayment,
		Amount:       req.Amount,
		Counterparty: customer.FullName,
		Description:  "POS payment",
		Status:       models.TransactionStatusCompleted,
		CreatedAt:    now,
		CompletedAt:  now,
	})
	s.store.addPayment(paymentRecord{
		Code:       "POS-" + shortCode(),
		MerchantID: merchant.ID,
		Amount:     req.Amount,
		Currency:   models.DefaultCurrency,
		Status:     models.PaymentStatusPaid,
		CreatedAt:  now,
		PaidAt:     now,
	})
	s.store.notify(customer.ID, "payment", "Payment sent",
		req.Amount.String()+" FTK paid to "+merchantName)

	c.JSON(http.StatusOK, dto.TransferResponse{
		APIResponse:     dto.APIResponse{Success: true, Message: "Payment completed"},
		TransactionHash: hash,
		Amount:          &req.Amount,
		Recipient:       merchantName,
		NewBalance:      &merchant.Wallet.Balance,
	})
}

func (s *Server) handleRegisterDevice(c *gin.Context) {
	var req dto.NfcRegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DeviceID == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Device ID is required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	account.Devices[req.DeviceID] = req.DeviceName
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Message: "Device registered"})
}

func (s *Server) handleGenerateNfcToken(c *gin.Context) {
	var req dto.NfcGenerateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "A positive amount is required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	if account.Wallet.Balance.LessThan(req.Amount) {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Insufficient balance"})
		return
	}

	now := time.Now()
	tok := &nfcToken{
		Token:     "NFC-" + shortCode(),
		UserID:    account.ID,
		Amount:    req.Amount,
		CreatedAt: now,
		ExpiresAt: now.Add(nfcTokenTTL),
	}
	s.store.nfcTokens[tok.Token] = tok

	c.JSON(http.StatusOK, dto.NfcTokenResponse{
		APIResponse:  dto.APIResponse{Success: true},
		PaymentToken: tok.Token,
		NfcData:      nfcDataPrefix + tok.Token,
		Amount:       &tok.Amount,
		ExpiresAt:    tok.ExpiresAt.Format(time.RFC3339),
	})
}

func (s *Server) handleValidateNfc(c *gin.Context) {
	var req dto.NfcValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.NfcData == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "NFC data is required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	tok := s.store.nfcTokens[strings.TrimPrefix(req.NfcData, nfcDataPrefix)]
	if tok == nil || tok.Used {
		c.JSON(http.StatusOK, dto.NfcValidationResponse{
			APIResponse: dto.APIResponse{Message: "Payment token is invalid or already used"},
		})
		return
	}
	if time.Now().After(tok.ExpiresAt) {
		c.JSON(http.StatusOK, dto.NfcValidationResponse{
			APIResponse: dto.APIResponse{Message: "Payment token has expired"},
		})
		return
	}

	sender := s.store.accounts[tok.UserID]
	c.JSON(http.StatusOK, dto.NfcValidationResponse{
		APIResponse:  dto.APIResponse{Success: true},
		Valid:        true,
		SenderWallet: sender.Wallet.Address,
		SenderName:   sender.FullName,
		Amount:       &tok.Amount,
		PaymentToken: tok.Token,
	})
}

// shortCode returns an 8-character uppercase code for request and
// token identifiers.
func shortCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
