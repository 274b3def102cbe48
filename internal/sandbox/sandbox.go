// Package sandbox is a self-contained, in-memory stand-in for the FTK
// wallet backend. It serves the full API surface the client speaks so
// the CLI has a local target and the repository tests have a live
// fixture, without a real backend or a database.
package sandbox

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Config for the sandbox server.
type Config struct {
	JWTSecret string
	Logger    *logrus.Logger
	Seed      bool // create the demo accounts
}

// Server simulates the wallet backend.
type Server struct {
	engine    *gin.Engine
	store     *store
	jwtSecret string
	log       *logrus.Logger
}

// New builds a sandbox server. All endpoints live under /api to match
// the real deployment's base path.
func New(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	secret := cfg.JWTSecret
	if secret == "" {
		secret = "sandbox-dev-secret"
	}

	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		engine:    gin.New(),
		store:     newStore(),
		jwtSecret: secret,
		log:       log,
	}
	s.engine.Use(gin.Recovery())
	s.routes()

	if cfg.Seed {
		s.seed()
	}
	return s
}

// Handler exposes the router, ready for http.Server or httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	api := s.engine.Group("/api")

	api.POST("auth/login", s.handleLogin)
	api.POST("auth/register", s.handleRegister)

	authed := api.Group("", s.requireAuth())
	authed.GET("auth/verify", s.handleVerify)
	authed.GET("auth/profile", s.handleVerify)
	authed.POST("auth/logout", s.handleLogout)

	authed.GET("wallet/balance", s.handleBalance)
	authed.GET("wallet/transactions", s.handleTransactions)
	authed.POST("wallet/transfer", s.handleTransfer)

	authed.GET("pin/status", s.handlePinStatus)
	authed.POST("pin/set", s.handleSetPin)
	authed.POST("pin/change", s.handleChangePin)
	authed.POST("pin/verify", s.handleVerifyPin)

	authed.POST("payments/create-request", s.handleCreatePaymentRequest)
	authed.POST("payments/process", s.handleProcessPayment)
	authed.GET("payments/verify/:code", s.handleVerifyPayment)
	authed.GET("payments/history", s.handlePaymentHistory)
	authed.POST("payments/pos", s.handlePosPayment)

	authed.POST("nfc/register-device", s.handleRegisterDevice)
	authed.POST("nfc/generate-token", s.handleGenerateNfcToken)
	authed.POST("nfc/validate", s.handleValidateNfc)

	authed.GET("merchant/dashboard", s.handleDashboard)
	authed.GET("merchant/settings", s.handleGetSettings)
	authed.POST("merchant/settings", s.handleUpdateSettings)

	authed.GET("notifications", s.handleNotifications)
	authed.POST("notifications/mark-read", s.handleMarkRead)
	authed.POST("notifications/mark-all-read", s.handleMarkAllRead)

	authed.POST("transfer-requests/create", s.handleCreateTransferRequest)
	authed.GET("transfer-requests/pending", s.handlePendingTransferRequests)
	authed.POST("transfer-requests/approve", s.handleApproveTransferRequest)
	authed.POST("transfer-requests/reject", s.handleRejectTransferRequest)
	authed.GET("transfer-requests/search-users", s.handleSearchUsers)
}

// seed creates two demo accounts: alice (user) and the Coffee Corner
// merchant. Both use password "password123"; alice's PIN is 1234.
func (s *Server) seed() {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	alice := s.store.createAccount("alice", "alice@example.com", "Alice Rivers", "user", mustHash("password123"))
	alice.PinHash = mustHash("1234")
	alice.Wallet.Balance = decimal.NewFromInt(500)
	alice.Wallet.LifetimeEarned = decimal.NewFromInt(500)

	coffee := s.store.createAccount("coffeecorner", "owner@coffeecorner.example", "Coffee Corner", "merchant", mustHash("password123"))
	coffee.PinHash = mustHash("4321")
	coffee.MerchantSource = "sandbox"
	coffee.Wallet.Balance = decimal.NewFromInt(1200)
	coffee.Settings = merchantSettings{
		Name:      "Coffee Corner",
		Source:    "sandbox",
		Status:    "active",
		AcceptFTK: true,
		NFC:       true,
		QR:        true,
	}
}
