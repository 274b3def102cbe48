package sandbox

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fedha/ftk-go/internal/api/dto"
	"github.com/fedha/ftk-go/internal/auth"
)

const ctxUserID = "user_id"

// requireAuth validates the bearer token and stashes the account ID in
// the request context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{Message: "Authentication required"})
			return
		}

		userID, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "), s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{Message: "Invalid or expired token"})
			return
		}

		s.store.mu.Lock()
		_, ok := s.store.accounts[userID]
		s.store.mu.Unlock()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{Message: "Account not found"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

// current returns the authenticated account. Callers hold the store
// lock.
func (s *Server) current(c *gin.Context) *account {
	return s.store.accounts[c.GetInt(ctxUserID)]
}

func mustHash(secret string) string {
	hash, err := auth.HashSecret(secret)
	if err != nil {
		panic(err)
	}
	return hash
}
