package auth

import (
	"context"
	"testing"

	"github.com/xyz1481/turf-booking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmailAndContact(ctx context.Context, email, contactNo string) (*domain.User, error) {
	args := m.Called(ctx, email, contactNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmailAndContact(ctx context.Context, email, contactNo string) (bool, error) {
	args := m.Called(ctx, email, contactNo)
	return args.Bool(0), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID, role string) (string, error) {
	return "token-" + userID, nil
}

func TestSignIn_ExactMatch(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmailAndContact", mock.Anything, "playerone@example.com", "9876543210").
		Return(&domain.User{ID: "user-1", Email: "playerone@example.com", ContactNo: "9876543210", Role: domain.RolePlayer}, nil)

	service := NewService(mockUsers, stubJWT{})

	res, err := service.SignIn(context.Background(), SignInRequest{
		Email:     "playerone@example.com",
		ContactNo: "9876543210",
	})

	assert.NoError(t, err)
	assert.Equal(t, "user-1", res.User.ID)
	assert.Equal(t, "token-user-1", res.AccessToken)
}

func TestSignIn_WrongContactNo(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmailAndContact", mock.Anything, "playerone@example.com", "0000000000").
		Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.SignIn(context.Background(), SignInRequest{
		Email:     "playerone@example.com",
		ContactNo: "0000000000",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_AlwaysPlayer(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("ExistsByEmailAndContact", mock.Anything, "new@example.com", "9999999999").Return(false, nil)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockUsers, stubJWT{})

	res, err := service.Register(context.Background(), RegisterRequest{
		Name:      "New Player",
		Email:     "new@example.com",
		ContactNo: "9999999999",
		Role:      "admin",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RolePlayer, res.User.Role)
	assert.NotEmpty(t, res.User.ID)
	assert.NotEmpty(t, res.AccessToken)
}

func TestRegister_DuplicateEmailAndContact(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("ExistsByEmailAndContact", mock.Anything, "playerone@example.com", "9876543210").Return(true, nil)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:      "Player One",
		Email:     "playerone@example.com",
		ContactNo: "9876543210",
	})

	assert.ErrorIs(t, err, ErrUserExists)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
