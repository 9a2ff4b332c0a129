package handlers

import (
	"context"

	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/wizard"
	"github.com/pridecenter/pride-backend/pkg/prideapi"
	"github.com/stretchr/testify/mock"
)

type mockSubmissionService struct {
	mock.Mock
}

func (m *mockSubmissionService) session(args mock.Arguments) (*models.WizardSession, error) {
	s, _ := args.Get(0).(*models.WizardSession)
	return s, args.Error(1)
}

func (m *mockSubmissionService) Start(ctx context.Context, deviceID string, initial *wizard.Venue) (*models.WizardSession, error) {
	return m.session(m.Called(ctx, deviceID, initial))
}

func (m *mockSubmissionService) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	return m.session(m.Called(ctx, id))
}

func (m *mockSubmissionService) UpdateDraft(ctx context.Context, id string, patch wizard.Patch) (*models.WizardSession, error) {
	return m.session(m.Called(ctx, id, patch))
}

func (m *mockSubmissionService) Next(ctx context.Context, id string) (*models.WizardSession, error) {
	return m.session(m.Called(ctx, id))
}

func (m *mockSubmissionService) Back(ctx context.Context, id string) (*models.WizardSession, error) {
	return m.session(m.Called(ctx, id))
}

func (m *mockSubmissionService) TogglePresents(ctx context.Context, id string, on bool) (*models.WizardSession, error) {
	return m.session(m.Called(ctx, id, on))
}

func (m *mockSubmissionService) Submit(ctx context.Context, id, deviceID string) (*models.WizardSession, error) {
	return m.session(m.Called(ctx, id, deviceID))
}

func (m *mockSubmissionService) Discard(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSubmissionService) History(ctx context.Context, filter models.SubmissionFilter) ([]*models.SubmissionRecord, error) {
	args := m.Called(ctx, filter)
	records, _ := args.Get(0).([]*models.SubmissionRecord)
	return records, args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.LoginResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*models.Session)
	return s, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

type mockAdminUserService struct {
	mock.Mock
}

func (m *mockAdminUserService) user(args mock.Arguments) (*models.AdminUser, error) {
	u, _ := args.Get(0).(*models.AdminUser)
	return u, args.Error(1)
}

func (m *mockAdminUserService) CreateAdminUser(ctx context.Context, req *models.CreateAdminUserRequest) (*models.AdminUser, error) {
	return m.user(m.Called(ctx, req))
}

func (m *mockAdminUserService) GetAdminUser(ctx context.Context, id string) (*models.AdminUser, error) {
	return m.user(m.Called(ctx, id))
}

func (m *mockAdminUserService) ListAdminUsers(ctx context.Context) ([]*models.AdminUser, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*models.AdminUser)
	return users, args.Error(1)
}

func (m *mockAdminUserService) UpdateAdminUser(ctx context.Context, id string, req *models.UpdateAdminUserRequest) (*models.AdminUser, error) {
	return m.user(m.Called(ctx, id, req))
}

func (m *mockAdminUserService) DeleteAdminUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockReferenceService struct {
	mock.Mock
}

func (m *mockReferenceService) VenueOptions(ctx context.Context) models.ReferenceOptions {
	return m.Called(ctx).Get(0).(models.ReferenceOptions)
}

func (m *mockReferenceService) Artists(ctx context.Context) []prideapi.Artist {
	return m.Called(ctx).Get(0).([]prideapi.Artist)
}

func (m *mockReferenceService) OrganizationName(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

type mockSponsorService struct {
	mock.Mock
}

func (m *mockSponsorService) ListSponsors(ctx context.Context) ([]models.SponsorView, error) {
	args := m.Called(ctx)
	views, _ := args.Get(0).([]models.SponsorView)
	return views, args.Error(1)
}
