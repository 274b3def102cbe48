package sandbox

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fedha/ftk-go/internal/api/dto"
	"github.com/fedha/ftk-go/internal/models"
)

const recentPaymentsLimit = 5

func (s *Server) handleDashboard(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	merchant := s.current(c)
	if merchant.Role != models.RoleMerchant {
		c.JSON(http.StatusForbidden, dto.APIResponse{Message: "Merchant account required"})
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	week := today.AddDate(0, 0, -6)
	month := today.AddDate(0, 0, -29)

	var stats dto.StatsInfo
	stats.Today = periodStats(s.store, merchant.ID, today)
	stats.Week = periodStats(s.store, merchant.ID, week)
	stats.Month = periodStats(s.store, merchant.ID, month)
	for _, p := range s.store.payments {
		if p.MerchantID == merchant.ID && p.Status == models.PaymentStatusPending && now.Before(p.ExpiresAt) {
			stats.Pending++
		}
	}

	recent := make([]dto.RecentPayment, 0, recentPaymentsLimit)
	for i := len(s.store.transactions) - 1; i >= 0 && len(recent) < recentPaymentsLimit; i-- {
		t := s.store.transactions[i]
		if t.UserID != merchant.ID || t.Direction != models.DirectionIncoming {
			continue
		}
		recent = append(recent, dto.RecentPayment{
			ID:        t.ID,
			Amount:    t.Amount,
			From:      t.Counterparty,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		})
	}

	name := merchant.Settings.Name
	if name == "" {
		name = merchant.FullName
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		APIResponse: dto.APIResponse{Success: true},
		Merchant: &dto.MerchantInfo{
			ID:     merchant.ID,
			Name:   name,
			Source: merchant.MerchantSource,
		},
		Wallet: &dto.WalletInfo{
			Balance: &merchant.Wallet.Balance,
			Address: merchant.Wallet.Address,
		},
		Stats:          &stats,
		RecentPayments: recent,
	})
}

// periodStats sums incoming completed transactions from the cutoff
// onward. Callers hold the store lock.
func periodStats(st *store, merchantID int, since time.Time) *dto.PeriodStats {
	p := &dto.PeriodStats{Amount: decimal.Zero}
	for _, t := range st.transactions {
		if t.UserID != merchantID || t.Direction != models.DirectionIncoming {
			continue
		}
		if t.Status != models.TransactionStatusCompleted || t.CreatedAt.Before(since) {
			continue
		}
		p.Amount = p.Amount.Add(t.Amount)
		p.Transactions++
	}
	return p
}

func (s *Server) handleGetSettings(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	merchant := s.current(c)
	if merchant.Role != models.RoleMerchant {
		c.JSON(http.StatusForbidden, dto.APIResponse{Message: "Merchant account required"})
		return
	}
	c.JSON(http.StatusOK, settingsDTO(merchant))
}

func (s *Server) handleUpdateSettings(c *gin.Context) {
	var req dto.MerchantSettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Invalid settings payload"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	merchant := s.current(c)
	if merchant.Role != models.RoleMerchant {
		c.JSON(http.StatusForbidden, dto.APIResponse{Message: "Merchant account required"})
		return
	}

	if req.MerchantName != "" {
		merchant.Settings.Name = req.MerchantName
	}
	if req.Phone != "" {
		merchant.Settings.Phone = req.Phone
	}
	if req.Logo != "" {
		merchant.Settings.Logo = req.Logo
	}
	if req.AcceptFtk != nil {
		merchant.Settings.AcceptFTK = *req.AcceptFtk
	}
	if req.AcceptCard != nil {
		merchant.Settings.AcceptCard = *req.AcceptCard
	}
	if req.NfcEnabled != nil {
		merchant.Settings.NFC = *req.NfcEnabled
	}
	if req.QrEnabled != nil {
		merchant.Settings.QR = *req.QrEnabled
	}

	resp := settingsDTO(merchant)
	resp.Message = "Settings updated"
	c.JSON(http.StatusOK, resp)
}

func settingsDTO(a *account) dto.MerchantSettingsResponse {
	return dto.MerchantSettingsResponse{
		APIResponse:    dto.APIResponse{Success: true},
		MerchantName:   a.Settings.Name,
		MerchantSource: a.Settings.Source,
		Email:          a.Email,
		Phone:          a.Settings.Phone,
		Status:         a.Settings.Status,
		Logo:           a.Settings.Logo,
		AcceptFtk:      a.Settings.AcceptFTK,
		AcceptCard:     a.Settings.AcceptCard,
		NfcEnabled:     a.Settings.NFC,
		QrEnabled:      a.Settings.QR,
	}
}
