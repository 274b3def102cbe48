package sandbox

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fedha/ftk-go/internal/api/dto"
	"github.com/fedha/ftk-go/internal/auth"
)

// checkPin verifies the account's transaction PIN and drives the
// lockout counter. Returns a user-facing message when the check does
// not pass. Callers hold the store lock.
func (s *Server) checkPin(a *account, pin string) (string, bool) {
	if a.PinHash == "" {
		return "No transaction PIN set", false
	}
	if time.Now().Before(a.PinLockedUntil) {
		return "PIN is locked due to too many failed attempts. Try again later", false
	}
	if pin == "" || !auth.CheckSecret(pin, a.PinHash) {
		a.PinAttempts++
		if a.PinAttempts >= pinMaxAttempts {
			a.PinLockedUntil = time.Now().Add(pinLockout)
			a.PinAttempts = 0
			return "PIN is locked due to too many failed attempts. Try again later", false
		}
		return "Incorrect PIN", false
	}
	a.PinAttempts = 0
	return "", true
}

func (s *Server) handlePinStatus(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	resp := dto.PinStatusResponse{
		APIResponse: dto.APIResponse{Success: true},
		HasPin:      account.PinHash != "",
		IsLocked:    time.Now().Before(account.PinLockedUntil),
	}
	if resp.IsLocked {
		resp.LockedUntil = account.PinLockedUntil.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSetPin(c *gin.Context) {
	var req dto.SetPinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Pin == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "PIN is required"})
		return
	}
	if len(req.Pin) != 4 {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "PIN must be 4 digits"})
		return
	}
	if req.Pin != req.ConfirmPin {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "PINs do not match"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	if account.PinHash != "" {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "PIN already set. Use change PIN instead"})
		return
	}
	account.PinHash = mustHash(req.Pin)
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Message: "PIN set successfully"})
}

func (s *Server) handleChangePin(c *gin.Context) {
	var req dto.ChangePinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPin == "" || req.NewPin == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Current and new PIN are required"})
		return
	}
	if len(req.NewPin) != 4 {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "PIN must be 4 digits"})
		return
	}
	if req.NewPin != req.ConfirmPin {
		c.JSON(http.StatusOK, dto.APIResponse{Message: "PINs do not match"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	if msg, ok := s.checkPin(account, req.CurrentPin); !ok {
		c.JSON(http.StatusOK, dto.APIResponse{Message: msg})
		return
	}
	account.PinHash = mustHash(req.NewPin)
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Message: "PIN changed successfully"})
}

func (s *Server) handleVerifyPin(c *gin.Context) {
	var req dto.VerifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Pin == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "PIN is required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	if msg, ok := s.checkPin(account, req.Pin); !ok {
		c.JSON(http.StatusOK, dto.APIResponse{Message: msg})
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Message: "PIN verified"})
}
