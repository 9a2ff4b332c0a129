package repositories

import (
	"context"
	"errors"

	"github.com/pridecenter/pride-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique key already exists.
var ErrDuplicate = errors.New("duplicate key")

// AdminUserRepository defines the interface for back-office account operations
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) (*models.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	FindAll(ctx context.Context) ([]*models.AdminUser, error)
	Update(ctx context.Context, user *models.AdminUser) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByRole(ctx context.Context, role string) (int64, error)
}

// BlockedDeviceRepository defines the interface for the moderation block list
type BlockedDeviceRepository interface {
	IsBlocked(ctx context.Context, deviceID string) (bool, error)
	Add(ctx context.Context, device *models.BlockedDevice) error
	Remove(ctx context.Context, deviceID string) error
	FindAll(ctx context.Context) ([]*models.BlockedDevice, error)
}

// SubmissionRepository stores the audit log of accepted submissions
type SubmissionRepository interface {
	Create(ctx context.Context, record *models.SubmissionRecord) error
	FindAll(ctx context.Context, filter models.SubmissionFilter) ([]*models.SubmissionRecord, error)
}
