package sandbox

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fedha/ftk-go/internal/api/dto"
	"github.com/fedha/ftk-go/internal/models"
)

// transferFeeRate is the flat network fee on wallet-to-wallet sends.
var transferFeeRate = decimal.NewFromFloat(0.01)

func (s *Server) handleBalance(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	w := account.Wallet

	entityType := "user"
	entityName := account.FullName
	if account.Role == models.RoleMerchant {
		entityType = "merchant"
		if account.Settings.Name != "" {
			entityName = account.Settings.Name
		}
	}

	c.JSON(http.StatusOK, dto.WalletBalanceResponse{
		APIResponse:    dto.APIResponse{Success: true},
		Balance:        &w.Balance,
		LockedBalance:  &w.LockedBalance,
		LifetimeEarned: &w.LifetimeEarned,
		LifetimeSpent:  &w.LifetimeSpent,
		WalletAddress:  w.Address,
		EntityName:     entityName,
		EntityType:     entityType,
		Currency:       models.DefaultCurrency,
	})
}

func (s *Server) handleTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	records := s.store.transactionsFor(account.ID, limit, offset)
	out := make([]dto.TransactionDTO, 0, len(records))
	for _, t := range records {
		out = append(out, txDTO(t))
	}

	c.JSON(http.StatusOK, dto.TransactionsResponse{
		APIResponse:  dto.APIResponse{Success: true},
		Transactions: out,
	})
}

func (s *Server) handleTransfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipientWallet == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Recipient wallet is required"})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Amount must be positive"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	sender := s.current(c)
	if msg, ok := s.checkPin(sender, req.Pin); !ok {
		c.JSON(http.StatusOK, dto.APIResponse{Message: msg})
		return
	}

	recipient := s.store.findByWallet(req.RecipientWallet)
	if recipient == nil {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Recipient wallet not found"})
		return
	}
	if recipient.ID == sender.ID {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Cannot transfer to your own wallet"})
		return
	}

	fee := req.Amount.Mul(transferFeeRate).Round(2)
	total := req.Amount.Add(fee)
	if sender.Wallet.Balance.LessThan(total) {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Insufficient balance"})
		return
	}

	hash := s.executeTransfer(sender, recipient, req.Amount, fee, req.Description)

	c.JSON(http.StatusOK, dto.TransferResponse{
		APIResponse:     dto.APIResponse{Success: true, Message: "Transfer completed"},
		TransactionHash: hash,
		Amount:          &req.Amount,
		Fee:             &fee,
		Recipient:       recipient.FullName,
		NewBalance:      &sender.Wallet.Balance,
	})
}

// executeTransfer moves funds and records the movement on both sides.
// Callers hold the store lock and have already validated balance and
// PIN.
func (s *Server) executeTransfer(sender, recipient *account, amount, fee decimal.Decimal, description string) string {
	now := time.Now()
	hash := newTransactionHash()

	sender.Wallet.Balance = sender.Wallet.Balance.Sub(amount.Add(fee))
	sender.Wallet.LifetimeSpent = sender.Wallet.LifetimeSpent.Add(amount)
	recipient.Wallet.Balance = recipient.Wallet.Balance.Add(amount)
	recipient.Wallet.LifetimeEarned = recipient.Wallet.LifetimeEarned.Add(amount)

	s.store.addTransaction(txRecord{
		UserID:       sender.ID,
		Hash:         hash,
		Direction:    models.DirectionOutgoing,
		Type:         models.TransactionTypeTransfer,
		Amount:       amount,
		Fee:          fee,
		Counterparty: recipient.FullName,
		Description:  description,
		Status:       models.TransactionStatusCompleted,
		CreatedAt:    now,
		CompletedAt:  now,
	})
	s.store.addTransaction(txRecord{
		UserID:       recipient.ID,
		Hash:         hash,
		Direction:    models.DirectionIncoming,
		Type:         models.TransactionTypeTransfer,
		Amount:       amount,
		Counterparty: sender.FullName,
		Description:  description,
		Status:       models.TransactionStatusCompleted,
		CreatedAt:    now,
		CompletedAt:  now,
	})
	s.store.notify(recipient.ID, "transfer", "Money received",
		amount.String()+" FTK received from "+sender.FullName)

	return hash
}

func txDTO(t txRecord) dto.TransactionDTO {
	d := dto.TransactionDTO{
		ID:              t.ID,
		Hash:            t.Hash,
		Type:            t.Direction,
		TransactionType: t.Type,
		Amount:          t.Amount,
		Counterparty:    t.Counterparty,
		Description:     t.Description,
		Status:          t.Status,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
	if !t.Fee.IsZero() {
		fee := t.Fee
		d.Fee = &fee
	}
	if !t.CompletedAt.IsZero() {
		d.CompletedAt = t.CompletedAt.Format(time.RFC3339)
	}
	return d
}
