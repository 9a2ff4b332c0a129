package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/repositories"
	"github.com/pridecenter/pride-backend/internal/store"
	"github.com/pridecenter/pride-backend/pkg/jwt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*models.Session, error)
	Logout(ctx context.Context, session *models.Session) error
}

type authService struct {
	users    repositories.AdminUserRepository
	tokens   *jwt.TokenManager
	denylist store.TokenDenylist
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(users repositories.AdminUserRepository, tokens *jwt.TokenManager, denylist store.TokenDenylist, logger *zap.Logger) AuthService {
	return &authService{
		users:    users,
		tokens:   tokens,
		denylist: denylist,
		logger:   logger.Named("auth"),
	}
}

// Login checks the password and issues a session token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login rejected", zap.String("email", user.Email))
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	s.logger.Info("login", zap.String("user_id", user.ID.Hex()), zap.String("role", user.Role))

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	}, nil
}

// Authenticate turns a bearer token into a Session, refusing revoked tokens
func (s *authService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return &models.Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes the session's token until it expires
func (s *authService) Logout(ctx context.Context, session *models.Session) error {
	if err := s.denylist.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	s.logger.Info("logout", zap.String("user_id", session.UserID))
	return nil
}
