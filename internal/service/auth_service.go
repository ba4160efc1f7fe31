package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"repouso-data/internal/domain"
	"repouso-data/internal/repository"
	"repouso-data/internal/store"
	"repouso-data/internal/wizard"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidCredentials wrong email/password or inactive account.
var ErrInvalidCredentials = errors.New("credenciais inválidas")

// ErrSessionExpired bearer token unknown or past its TTL.
var ErrSessionExpired = errors.New("sessão expirada")

// Session the authenticated principal attached to a request.
type Session struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// HashPassword sha256 over lower(email) + ":" + password, matching the
// console's client-side hashing rules.
func HashPassword(email, password string) []byte {
	sum := sha256.Sum256([]byte(strings.TrimSpace(strings.ToLower(email)) + ":" + password))
	return sum[:]
}

// AuthService login, logout and bearer-token resolution. Tokens live in
// the session KV (Redis or in-process) under an absolute TTL. When the
// hosted auth gateway is configured, token verification is delegated to
// it instead.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, session *Session, err error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*Session, error)

	wizard.IdentityProvider
}

type authService struct {
	users    repository.UsersRepository
	kv       store.KV
	authGate *AuthGateClient // nil unless the hosted provider is enabled
	ttl      time.Duration
	logger   *zap.Logger
}

func NewAuthService(users repository.UsersRepository, kv store.KV, authGate *AuthGateClient, ttl time.Duration, logger *zap.Logger) AuthService {
	return &authService{
		users:    users,
		kv:       kv,
		authGate: authGate,
		ttl:      ttl,
		logger:   logger,
	}
}

func sessionKey(token string) string { return "session:" + token }

func (s *authService) Login(ctx context.Context, email, password string) (string, *Session, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Status != "active" {
		return "", nil, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare(user.PasswordHash, HashPassword(email, password)) != 1 {
		return "", nil, ErrInvalidCredentials
	}

	session := &Session{UserID: user.UserID, FullName: user.FullName, Role: user.Role}
	payload, err := json.Marshal(session)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode session: %w", err)
	}

	token := uuid.NewString()
	if err := s.kv.Set(ctx, sessionKey(token), string(payload), s.ttl); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.UserID),
		zap.String("role", user.Role),
	)
	return token, session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.kv.Delete(ctx, sessionKey(token))
}

func (s *authService) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionExpired
	}
	if s.authGate != nil {
		identity, err := s.authGate.VerifyToken(ctx, token)
		if err != nil {
			return nil, ErrSessionExpired
		}
		return &Session{UserID: identity.UserID, FullName: identity.FullName, Role: identity.Role}, nil
	}

	raw, err := s.kv.Get(ctx, sessionKey(token))
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// CurrentUser implements wizard.IdentityProvider from the request
// context populated by the auth middleware.
func (s *authService) CurrentUser(ctx context.Context) (wizard.Identity, bool) {
	session, ok := SessionFrom(ctx)
	if !ok {
		return wizard.Identity{}, false
	}
	return wizard.Identity{ID: session.UserID, Name: session.FullName}, true
}

// ---- request context plumbing ----

type sessionContextKey struct{}

func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

func SessionFrom(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*Session)
	return session, ok && session != nil
}

// SeedAdmin dev bootstrap: ensure a usable admin login exists so the
// console is reachable on a fresh environment.
func SeedAdmin(ctx context.Context, users repository.UsersRepository, email, password string, logger *zap.Logger) {
	if _, err := users.GetUserByEmail(ctx, email); err == nil {
		return
	}
	_, err := users.CreateUser(ctx, &domain.User{
		FullName:     "Administrador",
		Email:        email,
		PasswordHash: HashPassword(email, password),
		Role:         domain.RoleAdmin,
		Status:       "active",
	})
	if err != nil {
		logger.Warn("admin seed failed", zap.Error(err))
		return
	}
	logger.Info("admin account seeded", zap.String("email", email))
}
