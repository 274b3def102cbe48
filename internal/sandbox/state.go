package sandbox

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lifetimes of the short-lived artifacts the backend hands out.
const (
	paymentRequestTTL  = 15 * time.Minute
	nfcTokenTTL        = 2 * time.Minute
	transferRequestTTL = 24 * time.Hour
)

// PIN lockout: three consecutive failures, fifteen minutes.
const (
	pinMaxAttempts = 3
	pinLockout     = 15 * time.Minute
)

type account struct {
	ID             int
	Username       string
	Email          string
	FullName       string
	Role           string
	MerchantSource string
	PasswordHash   string
	Active         bool

	PinHash        string
	PinAttempts    int
	PinLockedUntil time.Time

	Wallet   walletState
	Settings merchantSettings
	Devices  map[string]string // device id -> name
}

type walletState struct {
	Address        string
	Balance        decimal.Decimal
	LockedBalance  decimal.Decimal
	LifetimeEarned decimal.Decimal
	LifetimeSpent  decimal.Decimal
}

type merchantSettings struct {
	Name       string
	Source     string
	Phone      string
	Status     string
	Logo       string
	AcceptFTK  bool
	AcceptCard bool
	NFC        bool
	QR         bool
}

type txRecord struct {
	ID           int
	UserID       int
	Hash         string
	Direction    string
	Type         string
	Amount       decimal.Decimal
	Fee          decimal.Decimal
	Counterparty string
	Description  string
	Status       string
	CreatedAt    time.Time
	CompletedAt  time.Time
}

type paymentRecord struct {
	ID          int
	Code        string
	MerchantID  int
	Amount      decimal.Decimal
	Currency    string
	Description string
	Status      string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	PaidAt      time.Time
}

type nfcToken struct {
	Token     string
	UserID    int
	Amount    decimal.Decimal
	Used      bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

type transferRequest struct {
	ID          int
	Code        string
	RequesterID int
	RecipientID int
	Amount      decimal.Decimal
	Description string
	Status      string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

type notification struct {
	ID        int
	UserID    int
	Type      string
	Title     string
	Message   string
	Icon      string
	Link      string
	Read      bool
	CreatedAt time.Time
}

// store is the whole simulated backend under one lock. The sandbox is
// a fixture, not a server that needs to scale.
type store struct {
	mu sync.Mutex

	accounts      map[int]*account
	transactions  []txRecord
	payments      []paymentRecord
	nfcTokens     map[string]*nfcToken
	requests      map[int]*transferRequest
	notifications []notification

	nextAccount      int
	nextTransaction  int
	nextPayment      int
	nextRequest      int
	nextNotification int
}

func newStore() *store {
	return &store{
		accounts:    make(map[int]*account),
		nfcTokens:   make(map[string]*nfcToken),
		requests:    make(map[int]*transferRequest),
		nextAccount: 1, nextTransaction: 1, nextPayment: 1, nextRequest: 1, nextNotification: 1,
	}
}

// Callers hold s.mu for everything below.

func (s *store) findByUsername(identifier string) *account {
	for _, a := range s.accounts {
		if strings.EqualFold(a.Username, identifier) || strings.EqualFold(a.Email, identifier) {
			return a
		}
	}
	return nil
}

func (s *store) findByWallet(address string) *account {
	for _, a := range s.accounts {
		if a.Wallet.Address == address {
			return a
		}
	}
	return nil
}

func (s *store) createAccount(username, email, fullName, role, passwordHash string) *account {
	a := &account{
		ID:           s.nextAccount,
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Role:         role,
		PasswordHash: passwordHash,
		Active:       true,
		Wallet:       walletState{Address: newWalletAddress()},
		Devices:      make(map[string]string),
	}
	s.nextAccount++
	s.accounts[a.ID] = a
	return a
}

func (s *store) addTransaction(t txRecord) txRecord {
	t.ID = s.nextTransaction
	s.nextTransaction++
	s.transactions = append(s.transactions, t)
	return t
}

// transactionsFor returns the user's history, newest first.
func (s *store) transactionsFor(userID, limit, offset int) []txRecord {
	var all []txRecord
	for i := len(s.transactions) - 1; i >= 0; i-- {
		if s.transactions[i].UserID == userID {
			all = append(all, s.transactions[i])
		}
	}
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

func (s *store) addPayment(p paymentRecord) *paymentRecord {
	p.ID = s.nextPayment
	s.nextPayment++
	s.payments = append(s.payments, p)
	return &s.payments[len(s.payments)-1]
}

func (s *store) paymentByCode(code string) *paymentRecord {
	for i := range s.payments {
		if s.payments[i].Code == code {
			return &s.payments[i]
		}
	}
	return nil
}

func (s *store) notify(userID int, kind, title, message string) {
	s.notifications = append(s.notifications, notification{
		ID:        s.nextNotification,
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	})
	s.nextNotification++
}

func newWalletAddress() string {
	return "FTK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}

func newTransactionHash() string {
	return "0x" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
