package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AdminUserService manages back-office accounts
type AdminUserService interface {
	CreateAdminUser(ctx context.Context, req *models.CreateAdminUserRequest) (*models.AdminUser, error)
	GetAdminUser(ctx context.Context, id string) (*models.AdminUser, error)
	ListAdminUsers(ctx context.Context) ([]*models.AdminUser, error)
	UpdateAdminUser(ctx context.Context, id string, req *models.UpdateAdminUserRequest) (*models.AdminUser, error)
	DeleteAdminUser(ctx context.Context, id string) error
}

type adminUserService struct {
	users repositories.AdminUserRepository
}

// NewAdminUserService creates a new AdminUserService
func NewAdminUserService(users repositories.AdminUserRepository) AdminUserService {
	return &adminUserService{users: users}
}

func (s *adminUserService) CreateAdminUser(ctx context.Context, req *models.CreateAdminUserRequest) (*models.AdminUser, error) {
	if !models.IsValidRole(req.Role) {
		return nil, ErrInvalidRole
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("find admin user: %w", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &models.AdminUser{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create admin user: %w", err)
	}
	return user, nil
}

func (s *adminUserService) GetAdminUser(ctx context.Context, id string) (*models.AdminUser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *adminUserService) ListAdminUsers(ctx context.Context) ([]*models.AdminUser, error) {
	return s.users.FindAll(ctx)
}

// UpdateAdminUser changes name, role or password. Demoting the last admin is refused.
func (s *adminUserService) UpdateAdminUser(ctx context.Context, id string, req *models.UpdateAdminUserRequest) (*models.AdminUser, error) {
	user, err := s.GetAdminUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if req.Role != "" && req.Role != user.Role {
		if !models.IsValidRole(req.Role) {
			return nil, ErrInvalidRole
		}
		if user.Role == models.RoleAdmin {
			if err := s.ensureOtherAdmin(ctx); err != nil {
				return nil, err
			}
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		if user.PasswordHash, err = hashPassword(req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update admin user: %w", err)
	}
	return user, nil
}

// DeleteAdminUser removes an account. The last admin cannot be removed.
func (s *adminUserService) DeleteAdminUser(ctx context.Context, id string) error {
	user, err := s.GetAdminUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		if err := s.ensureOtherAdmin(ctx); err != nil {
			return err
		}
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *adminUserService) ensureOtherAdmin(ctx context.Context) error {
	admins, err := s.users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins <= 1 {
		return ErrLastAdmin
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
