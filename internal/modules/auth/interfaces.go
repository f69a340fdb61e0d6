package auth

import (
	"context"

	"github.com/xyz1481/turf-booking/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmailAndContact(ctx context.Context, email, contactNo string) (*domain.User, error)
	ExistsByEmailAndContact(ctx context.Context, email, contactNo string) (bool, error)
}
