package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/discoverypromo/raffle-admin-backend/internal/authgate"
	"github.com/discoverypromo/raffle-admin-backend/internal/models"
	"github.com/discoverypromo/raffle-admin-backend/internal/repositories"
	"github.com/discoverypromo/raffle-admin-backend/internal/utils"
	jwtpkg "github.com/discoverypromo/raffle-admin-backend/pkg/jwt"
)

// ErrInvalidCredentials is returned for any login failure so callers cannot
// distinguish unknown accounts from wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Compile-time check that AuthService serves the gate boundary.
var _ authgate.StateProvider = (*AuthService)(nil)

// AuthService authenticates staff and doubles as the authgate.StateProvider:
// the auth state starts unresolved, resolves when ResolveInitialState or a
// login publishes it, and notifies subscribers on every change.
type AuthService struct {
	adminRepo repositories.AdminUserRepository
	tokens    *jwtpkg.TokenService
	log       zerolog.Logger

	mu       sync.Mutex
	resolved bool
	current  *authgate.User
	subs     map[int]func(*authgate.User)
	nextSub  int
}

// NewAuthService creates an AuthService.
func NewAuthService(adminRepo repositories.AdminUserRepository, tokens *jwtpkg.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		tokens:    tokens,
		log:       log.With().Str("component", "auth").Logger(),
		subs:      make(map[int]func(*authgate.User)),
	}
}

// Login verifies staff credentials and returns a signed session token. A
// successful login resolves the auth state as signed in.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.AdminUser, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(admin.ID.Hex(), admin.Email, admin.Role)
	if err != nil {
		return "", nil, err
	}

	s.setState(&authgate.User{
		ID:    admin.ID.Hex(),
		Email: admin.Email,
		Name:  utils.DisplayName(strings.TrimSpace(admin.FirstName+" "+admin.LastName), admin.Email),
	})
	s.log.Info().Str("email", utils.MaskEmail(admin.Email)).Msg("admin signed in")
	return token, admin, nil
}

// Logout resolves the auth state as signed out.
func (s *AuthService) Logout() {
	s.setState(nil)
	s.log.Info().Msg("admin signed out")
}

// ResolveInitialState publishes the initial auth state, optionally restoring
// a previous session token. Until this runs, gate-guarded navigations wait on
// the first state notification.
func (s *AuthService) ResolveInitialState(ctx context.Context, token string) {
	if token == "" {
		s.setState(nil)
		return
	}
	claims, err := s.tokens.Validate(token)
	if err != nil {
		s.log.Warn().Err(err).Msg("stale session token, starting signed out")
		s.setState(nil)
		return
	}
	adminID, _ := claims["sub"].(string)
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		s.log.Warn().Err(err).Msg("session admin not found, starting signed out")
		s.setState(nil)
		return
	}
	s.setState(&authgate.User{
		ID:    admin.ID.Hex(),
		Email: admin.Email,
		Name:  utils.DisplayName(strings.TrimSpace(admin.FirstName+" "+admin.LastName), admin.Email),
	})
	s.log.Info().Str("email", utils.MaskEmail(admin.Email)).Msg("session restored")
}

// CurrentUser returns the signed-in admin, or nil while the state is
// unresolved or signed out.
func (s *AuthService) CurrentUser() *authgate.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// OnAuthStateChanged subscribes to auth state changes. A subscriber added
// after the state has resolved is notified immediately with the current
// value. The returned function removes the subscription; calling it more
// than once is safe.
func (s *AuthService) OnAuthStateChanged(fn func(*authgate.User)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	resolved, current := s.resolved, s.current
	s.mu.Unlock()

	if resolved {
		fn(current)
	}
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *AuthService) setState(user *authgate.User) {
	s.mu.Lock()
	s.resolved = true
	s.current = user
	listeners := make([]func(*authgate.User), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(user)
	}
}
