package utils

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAdminCreator struct {
	mock.Mock
}

func (m *mockAdminCreator) CreateAdminUser(ctx context.Context, req *models.CreateAdminUserRequest) (*models.AdminUser, error) {
	args := m.Called(ctx, req)
	if u, ok := args.Get(0).(*models.AdminUser); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestImportAdmins(t *testing.T) {
	csvData := "Email,Name,Role,Password\n" +
		"ana@example.org,Ana,Admin,longpassword\n" +
		"bo@example.org,,,\n" +
		",Nobody,staff,x\n" +
		"dup@example.org,Dup,staff,longpassword\n"

	creator := &mockAdminCreator{}
	creator.On("CreateAdminUser", mock.Anything, mock.MatchedBy(func(r *models.CreateAdminUserRequest) bool {
		return r.Email == "ana@example.org"
	})).Return(&models.AdminUser{Email: "ana@example.org"}, nil).Once()
	creator.On("CreateAdminUser", mock.Anything, mock.MatchedBy(func(r *models.CreateAdminUserRequest) bool {
		return r.Email == "bo@example.org" && r.Name == "bo@example.org" && r.Role == models.RoleStaff && len(r.Password) == 16
	})).Return(&models.AdminUser{Email: "bo@example.org"}, nil).Once()
	creator.On("CreateAdminUser", mock.Anything, mock.MatchedBy(func(r *models.CreateAdminUserRequest) bool {
		return r.Email == "dup@example.org"
	})).Return(nil, errors.New("email already in use")).Once()

	result, err := NewCSVImporter(creator).ImportAdmins(context.Background(), strings.NewReader(csvData))

	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalRows)
	assert.Equal(t, 2, result.Created)
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, result.Generated, "bo@example.org")
	assert.NotContains(t, result.Generated, "ana@example.org")
	creator.AssertExpectations(t)
}

func TestImportAdmins_RequiresEmailColumn(t *testing.T) {
	_, err := NewCSVImporter(&mockAdminCreator{}).ImportAdmins(context.Background(), strings.NewReader("Name\nAna\n"))
	assert.Error(t, err)
}
