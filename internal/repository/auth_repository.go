package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/fedha/ftk-go/internal/api"
	"github.com/fedha/ftk-go/internal/api/dto"
	"github.com/fedha/ftk-go/internal/models"
	"github.com/fedha/ftk-go/internal/tokenstore"
)

// AuthState is the session snapshot. It is always replaced wholesale so
// observers never see a user without the authenticated flag or vice
// versa. Loading stays true until the startup token check completes.
type AuthState struct {
	User          *models.User
	Authenticated bool
	Loading       bool
}

// AuthRepository owns the session: who is logged in, the persisted
// bearer token, and the auth-related API calls.
type AuthRepository struct {
	api    *api.Client
	tokens tokenstore.Store
	log    *logrus.Entry

	mu      sync.Mutex
	state   AuthState
	subs    map[int]func(AuthState)
	nextSub int
}

// NewAuthRepository wires the repository. The initial state is Unknown:
// loading until Bootstrap runs.
func NewAuthRepository(client *api.Client, tokens tokenstore.Store, logger *logrus.Logger) *AuthRepository {
	return &AuthRepository{
		api:    client,
		tokens: tokens,
		log:    logger.WithField("repo", "auth"),
		state:  AuthState{Loading: true},
		subs:   make(map[int]func(AuthState)),
	}
}

// State returns the current session snapshot.
func (r *AuthRepository) State() AuthState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Subscribe registers an observer called with every new snapshot. The
// returned function cancels the subscription.
func (r *AuthRepository) Subscribe(fn func(AuthState)) (cancel func()) {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// IsMerchant reports whether the signed-in user is a merchant account.
func (r *AuthRepository) IsMerchant() bool {
	s := r.State()
	return s.User != nil && s.User.IsMerchant()
}

func (r *AuthRepository) setState(s AuthState) {
	r.mu.Lock()
	r.state = s
	subs := make([]func(AuthState), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}

// Bootstrap runs the startup session check: validate a persisted token
// if one exists. Any failure, of any kind, clears the token and lands
// in LoggedOut; for a wallet, failing closed on doubt beats guessing.
func (r *AuthRepository) Bootstrap(ctx context.Context) {
	token, err := r.tokens.Get()
	if err != nil || token == "" {
		if err != nil {
			r.log.WithError(err).Warn("token store unreadable, starting logged out")
		}
		r.setState(AuthState{})
		return
	}

	resp, err := r.api.VerifyToken(ctx)
	if err != nil || !resp.OK() {
		r.log.Info("stored token failed verification, clearing session")
		r.clearSession()
		return
	}

	user, ok := profileToUser(resp)
	if !ok {
		r.clearSession()
		return
	}
	r.setState(AuthState{User: user, Authenticated: true})
}

// Login authenticates and, on success, persists the token and enters
// the LoggedIn state.
func (r *AuthRepository) Login(ctx context.Context, username, password string) (*models.User, error) {
	msgs := Messages{
		Action:  "Login",
		Default: "Login failed",
		ByStatus: map[int]string{
			401: "Invalid username or password",
			403: "Account is not active",
			404: "Service not found",
			500: "Server error. Please try again later.",
		},
	}

	return call(r.log, msgs,
		func() (*dto.LoginResponse, error) {
			return r.api.Login(ctx, dto.LoginRequest{Username: username, Password: password})
		},
		func(resp *dto.LoginResponse) (*models.User, error) {
			if resp.Token == "" || resp.User == nil {
				return nil, fmt.Errorf("login response missing token or user")
			}
			user := userFromDTO(*resp.User)
			r.enterSession(resp.Token, user)
			return user, nil
		})
}

// RegisterParams carries the registration form. AccountType is "user"
// or "merchant"; the company fields only apply to merchants.
type RegisterParams struct {
	AccountType string
	FullName    string
	Email       string
	Password    string
	Phone       string
	CompanyName string
	City        string
	Country     string
}

// Register creates an account and enters the LoggedIn state. The
// returned message may describe a welcome bonus.
func (r *AuthRepository) Register(ctx context.Context, p RegisterParams) (*models.User, string, error) {
	msgs := Messages{
		Action:  "Registration",
		Default: "Registration failed",
		ByStatus: map[int]string{
			400: "Invalid registration data",
			409: "Account already exists",
			500: "Server error. Please try again later.",
		},
	}

	type outcome struct {
		user    *models.User
		message string
	}

	out, err := call(r.log, msgs,
		func() (*dto.RegisterResponse, error) {
			return r.api.Register(ctx, dto.RegisterRequest{
				AccountType: p.AccountType,
				FullName:    p.FullName,
				Email:       p.Email,
				Password:    p.Password,
				Phone:       p.Phone,
				CompanyName: p.CompanyName,
				City:        p.City,
				Country:     p.Country,
			})
		},
		func(resp *dto.RegisterResponse) (outcome, error) {
			if resp.Token == "" || resp.User == nil {
				return outcome{}, fmt.Errorf("register response missing token or user")
			}
			user := userFromDTO(*resp.User)
			r.enterSession(resp.Token, user)
			return outcome{user: user, message: resp.Message}, nil
		})
	if err != nil {
		return nil, "", err
	}
	return out.user, out.message, nil
}

// Logout clears the persisted token and drops to LoggedOut. It is
// local-only and cannot fail; the server-side session simply expires.
func (r *AuthRepository) Logout() {
	r.clearSession()
}

func (r *AuthRepository) enterSession(token string, user *models.User) {
	if err := r.tokens.Set(token); err != nil {
		r.log.WithError(err).Error("persist token")
	}
	r.setState(AuthState{User: user, Authenticated: true})
}

func (r *AuthRepository) clearSession() {
	if err := r.tokens.Clear(); err != nil {
		r.log.WithError(err).Error("clear token")
	}
	r.setState(AuthState{})
}

func userFromDTO(d dto.UserDTO) *models.User {
	return &models.User{
		ID:             d.ID,
		Username:       d.Username,
		Email:          d.Email,
		FullName:       d.FullName,
		Role:           d.Role,
		MerchantSource: d.MerchantSource,
	}
}

// profileToUser rebuilds a User from auth/verify; the profile is only
// usable when the identifying fields are all present.
func profileToUser(p *dto.ProfileResponse) (*models.User, bool) {
	if p.ID == 0 || p.Username == "" || p.Email == "" || p.FullName == "" || p.Role == "" {
		return nil, false
	}
	return &models.User{
		ID:             p.ID,
		Username:       p.Username,
		Email:          p.Email,
		FullName:       p.FullName,
		Role:           p.Role,
		MerchantSource: p.MerchantSource,
	}, true
}
