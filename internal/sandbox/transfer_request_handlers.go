package sandbox

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fedha/ftk-go/internal/api/dto"
	"github.com/fedha/ftk-go/internal/models"
)

func (s *Server) handleCreateTransferRequest(c *gin.Context) {
	var req dto.TransferRequestBody
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipientID == 0 {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Recipient is required"})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Amount must be positive"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	requester := s.current(c)
	recipient := s.store.accounts[req.RecipientID]
	if recipient == nil {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Recipient not found"})
		return
	}
	if recipient.ID == requester.ID {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Cannot request money from yourself"})
		return
	}

	now := time.Now()
	r := &transferRequest{
		ID:          s.store.nextRequest,
		Code:        "TR-" + shortCode(),
		RequesterID: requester.ID,
		RecipientID: recipient.ID,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      models.TransferRequestPending,
		CreatedAt:   now,
		ExpiresAt:   now.Add(transferRequestTTL),
	}
	s.store.nextRequest++
	s.store.requests[r.ID] = r

	s.store.notify(recipient.ID, "transfer_request", "Money requested",
		requester.FullName+" requested "+req.Amount.String()+" FTK")

	c.JSON(http.StatusOK, dto.TransferRequestResponse{
		APIResponse: dto.APIResponse{Success: true, Message: "Transfer request sent"},
		RequestID:   r.ID,
		RequestCode: r.Code,
	})
}

func (s *Server) handlePendingTransferRequests(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	now := time.Now()

	out := make([]dto.TransferRequestItemDTO, 0)
	for _, r := range s.store.requests {
		if r.RecipientID != account.ID {
			continue
		}
		if r.Status == models.TransferRequestPending && now.After(r.ExpiresAt) {
			r.Status = models.TransferRequestExpired
		}
		if r.Status != models.TransferRequestPending {
			continue
		}
		requester := s.store.accounts[r.RequesterID]
		out = append(out, dto.TransferRequestItemDTO{
			ID:              r.ID,
			RequestCode:     r.Code,
			RequesterName:   requester.FullName,
			RequesterWallet: requester.Wallet.Address,
			Amount:          r.Amount,
			Description:     r.Description,
			Status:          r.Status,
			CreatedAt:       r.CreatedAt.Format(time.RFC3339),
			ExpiresAt:       r.ExpiresAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, dto.TransferRequestsListResponse{
		APIResponse: dto.APIResponse{Success: true},
		Requests:    out,
	})
}

func (s *Server) handleApproveTransferRequest(c *gin.Context) {
	var req dto.ApproveTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RequestID == 0 {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Request ID is required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	r := s.store.requests[req.RequestID]
	if r == nil || r.RecipientID != account.ID {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Transfer request not found"})
		return
	}
	if r.Status == models.TransferRequestPending && time.Now().After(r.ExpiresAt) {
		r.Status = models.TransferRequestExpired
	}
	if r.Status != models.TransferRequestPending {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Transfer request is " + r.Status})
		return
	}

	if msg, ok := s.checkPin(account, req.Pin); !ok {
		c.JSON(http.StatusOK, dto.APIResponse{Message: msg})
		return
	}

	fee := r.Amount.Mul(transferFeeRate).Round(2)
	if account.Wallet.Balance.LessThan(r.Amount.Add(fee)) {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Insufficient balance"})
		return
	}

	requester := s.store.accounts[r.RequesterID]
	hash := s.executeTransfer(account, requester, r.Amount, fee, r.Description)
	r.Status = models.TransferRequestApproved

	c.JSON(http.StatusOK, dto.TransferResponse{
		APIResponse:     dto.APIResponse{Success: true, Message: "Transfer request approved"},
		TransactionHash: hash,
		Amount:          &r.Amount,
		Fee:             &fee,
		Recipient:       requester.FullName,
		NewBalance:      &account.Wallet.Balance,
	})
}

func (s *Server) handleRejectTransferRequest(c *gin.Context) {
	var req dto.RejectTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RequestID == 0 {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Request ID is required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	r := s.store.requests[req.RequestID]
	if r == nil || r.RecipientID != account.ID {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Transfer request not found"})
		return
	}
	if r.Status != models.TransferRequestPending {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "Transfer request is " + r.Status})
		return
	}

	r.Status = models.TransferRequestRejected
	s.store.notify(r.RequesterID, "transfer_request", "Request declined",
		account.FullName+" declined your request for "+r.Amount.String()+" FTK")

	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Message: "Transfer request rejected"})
}

func (s *Server) handleSearchUsers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Search query is required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	needle := strings.ToLower(query)

	out := make([]dto.SearchedUserDTO, 0)
	for _, a := range s.store.accounts {
		if a.ID == account.ID {
			continue
		}
		if !strings.Contains(strings.ToLower(a.Username), needle) &&
			!strings.Contains(strings.ToLower(a.FullName), needle) &&
			!strings.Contains(strings.ToLower(a.Email), needle) {
			continue
		}
		out = append(out, dto.SearchedUserDTO{
			ID:            a.ID,
			Username:      a.Username,
			FullName:      a.FullName,
			WalletAddress: a.Wallet.Address,
		})
	}

	c.JSON(http.StatusOK, dto.UserSearchResponse{
		APIResponse: dto.APIResponse{Success: true},
		Users:       out,
	})
}
