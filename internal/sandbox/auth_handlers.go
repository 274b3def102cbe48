package sandbox

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fedha/ftk-go/internal/api/dto"
	"github.com/fedha/ftk-go/internal/auth"
	"github.com/fedha/ftk-go/internal/models"
)

var welcomeBonus = decimal.NewFromInt(100)

func (s *Server) handleLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Username and password are required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.store.findByUsername(req.Username)
	if account == nil || !auth.CheckSecret(req.Password, account.PasswordHash) {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Message: "Invalid username or password"})
		return
	}
	if !account.Active {
		c.JSON(http.StatusForbidden, dto.APIResponse{Message: "Account is not active"})
		return
	}

	token, err := auth.GenerateToken(account.ID, s.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.APIResponse{Message: "Could not create session"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		APIResponse: dto.APIResponse{Success: true, Message: "Login successful"},
		Token:       token,
		User:        userDTO(account),
	})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FullName == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Full name, email and password are required"})
		return
	}

	role := models.RoleUser
	if strings.EqualFold(req.AccountType, models.RoleMerchant) {
		role = models.RoleMerchant
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, a := range s.store.accounts {
		if strings.EqualFold(a.Email, req.Email) {
			c.JSON(http.StatusConflict, dto.APIResponse{Message: "Account already exists"})
			return
		}
	}

	username := s.uniqueUsername(req.Email)
	account := s.store.createAccount(username, req.Email, req.FullName, role, mustHash(req.Password))

	resp := dto.RegisterResponse{
		APIResponse: dto.APIResponse{Success: true, Message: "Account created"},
		User:        userDTO(account),
	}

	if role == models.RoleMerchant {
		name := req.CompanyName
		if name == "" {
			name = req.FullName
		}
		account.Settings = merchantSettings{
			Name:      name,
			Source:    "sandbox",
			Phone:     req.Phone,
			Status:    "active",
			AcceptFTK: true,
			NFC:       true,
			QR:        true,
		}
		account.MerchantSource = "sandbox"
	} else {
		account.Wallet.Balance = welcomeBonus
		account.Wallet.LifetimeEarned = welcomeBonus
		bonus := welcomeBonus
		resp.WelcomeBonus = &bonus
		resp.Message = fmt.Sprintf("Welcome! A %s FTK bonus has been credited to your wallet", welcomeBonus)
		s.store.addTransaction(txRecord{
			UserID:      account.ID,
			Hash:        newTransactionHash(),
			Direction:   models.DirectionIncoming,
			Type:        models.TransactionTypeReward,
			Amount:      welcomeBonus,
			Description: "Welcome bonus",
			Status:      models.TransactionStatusCompleted,
			CreatedAt:   time.Now(),
			CompletedAt: time.Now(),
		})
	}

	token, err := auth.GenerateToken(account.ID, s.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.APIResponse{Message: "Could not create session"})
		return
	}
	resp.Token = token

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleVerify(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	c.JSON(http.StatusOK, dto.ProfileResponse{
		APIResponse:    dto.APIResponse{Success: true},
		ID:             account.ID,
		Username:       account.Username,
		Email:          account.Email,
		FullName:       account.FullName,
		Role:           account.Role,
		MerchantSource: account.MerchantSource,
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	// Tokens are stateless; the client forgets its copy.
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Message: "Logged out"})
}

// uniqueUsername derives a handle from the email local part, suffixing
// a counter on collision. Callers hold the store lock.
func (s *Server) uniqueUsername(email string) string {
	base := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	base = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, base)
	if base == "" {
		base = "user"
	}

	candidate := base
	for i := 2; s.store.findByUsername(candidate) != nil; i++ {
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	return candidate
}

func userDTO(a *account) *dto.UserDTO {
	return &dto.UserDTO{
		ID:             a.ID,
		Username:       a.Username,
		Email:          a.Email,
		FullName:       a.FullName,
		Role:           a.Role,
		MerchantSource: a.MerchantSource,
	}
}
