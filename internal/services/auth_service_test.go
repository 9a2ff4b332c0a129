package services

import (
	"context"
	"testing"
	"time"

	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/repositories"
	"github.com/pridecenter/pride-backend/internal/store"
	"github.com/pridecenter/pride-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (AuthService, *mockAdminUserRepo, *models.AdminUser) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.AdminUser{
		ID:           primitive.NewObjectID(),
		Name:         "Ana",
		Email:        "ana@example.org",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	repo := &mockAdminUserRepo{}
	svc := NewAuthService(repo, jwt.NewTokenManager("secret", "pride-backend", time.Hour), store.NewMemoryDenylist(), zap.NewNop())
	return svc, repo, user
}

func TestLogin_AuthenticateLogout(t *testing.T) {
	svc, repo, user := newAuthFixture(t)
	repo.On("FindByEmail", mock.Anything, "ana@example.org").Return(user, nil)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &models.LoginRequest{Email: " ana@example.org ", Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user, resp.User)

	session, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), session.UserID)
	assert.True(t, session.IsAdmin())
	assert.WithinDuration(t, resp.ExpiresAt, session.ExpiresAt, time.Second)

	require.NoError(t, svc.Logout(ctx, session))
	_, err = svc.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo, user := newAuthFixture(t)
	repo.On("FindByEmail", mock.Anything, "ana@example.org").Return(user, nil)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ana@example.org", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	repo.On("FindByEmail", mock.Anything, "who@example.org").Return(nil, repositories.ErrNotFound)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "who@example.org", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_Garbage(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Authenticate(context.Background(), "garbage")

	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
