package services

import (
	"context"

	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/wizard"
	"github.com/pridecenter/pride-backend/pkg/prideapi"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockCommunityAPI struct {
	mock.Mock
}

func (m *mockCommunityAPI) CreateEventSubmission(ctx context.Context, payload wizard.Payload) error {
	return m.Called(ctx, payload).Error(0)
}

func (m *mockCommunityAPI) ListPublicEvents(ctx context.Context) ([]prideapi.PublicEvent, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]prideapi.PublicEvent)
	return events, args.Error(1)
}

func (m *mockCommunityAPI) ListBands(ctx context.Context) ([]prideapi.Artist, error) {
	args := m.Called(ctx)
	bands, _ := args.Get(0).([]prideapi.Artist)
	return bands, args.Error(1)
}

func (m *mockCommunityAPI) GetOrganization(ctx context.Context, id string) (*prideapi.Organization, error) {
	args := m.Called(ctx, id)
	org, _ := args.Get(0).(*prideapi.Organization)
	return org, args.Error(1)
}

func (m *mockCommunityAPI) ListSponsors(ctx context.Context) ([]prideapi.Sponsor, error) {
	args := m.Called(ctx)
	sponsors, _ := args.Get(0).([]prideapi.Sponsor)
	return sponsors, args.Error(1)
}

type mockAdminUserRepo struct {
	mock.Mock
}

func (m *mockAdminUserRepo) Create(ctx context.Context, user *models.AdminUser) (*models.AdminUser, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*models.AdminUser)
	return u, args.Error(1)
}

func (m *mockAdminUserRepo) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.AdminUser)
	return u, args.Error(1)
}

func (m *mockAdminUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.AdminUser)
	return u, args.Error(1)
}

func (m *mockAdminUserRepo) FindAll(ctx context.Context) ([]*models.AdminUser, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*models.AdminUser)
	return users, args.Error(1)
}

func (m *mockAdminUserRepo) Update(ctx context.Context, user *models.AdminUser) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockAdminUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAdminUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type mockBlockedDeviceRepo struct {
	mock.Mock
}

func (m *mockBlockedDeviceRepo) IsBlocked(ctx context.Context, deviceID string) (bool, error) {
	args := m.Called(ctx, deviceID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBlockedDeviceRepo) Add(ctx context.Context, device *models.BlockedDevice) error {
	return m.Called(ctx, device).Error(0)
}

func (m *mockBlockedDeviceRepo) Remove(ctx context.Context, deviceID string) error {
	return m.Called(ctx, deviceID).Error(0)
}

func (m *mockBlockedDeviceRepo) FindAll(ctx context.Context) ([]*models.BlockedDevice, error) {
	args := m.Called(ctx)
	devices, _ := args.Get(0).([]*models.BlockedDevice)
	return devices, args.Error(1)
}

type mockSubmissionRepo struct {
	mock.Mock
}

func (m *mockSubmissionRepo) Create(ctx context.Context, record *models.SubmissionRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockSubmissionRepo) FindAll(ctx context.Context, filter models.SubmissionFilter) ([]*models.SubmissionRecord, error) {
	args := m.Called(ctx, filter)
	records, _ := args.Get(0).([]*models.SubmissionRecord)
	return records, args.Error(1)
}
