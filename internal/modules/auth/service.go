package auth

import (
	"context"
	"errors"

	"github.com/xyz1481/turf-booking/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID, role string) (string, error)
}

type Service struct {
	users UserRepository
	jwt   jwtService
}

type AuthResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register appends a new player and signs them in. The stored role is
// always player regardless of what the request carried, and the
// (email, contactNo) pair must not already exist — duplicates would make
// sign-in ambiguous.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	exists, err := s.users.ExistsByEmailAndContact(ctx, req.Email, req.ContactNo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		ContactNo: req.ContactNo,
		DOB:       req.DOB,
		Role:      domain.RolePlayer,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: token}, nil
}

// SignIn matches email and contact number exactly, case-sensitive, with
// no normalization. There are no passwords in this system.
func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmailAndContact(ctx, req.Email, req.ContactNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: token}, nil
}
