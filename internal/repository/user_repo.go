package repository

import (
	"context"
	"time"

	"github.com/xyz1481/turf-booking/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;index:idx_email_contact,unique"`
	ContactNo string    `gorm:"column:contact_no;index:idx_email_contact,unique"`
	DOB       *string   `gorm:"column:dob"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var dob string
	if m.DOB != nil {
		dob = *m.DOB
	}

	return &domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		ContactNo: m.ContactNo,
		DOB:       dob,
		Role:      domain.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	var dob *string
	if u.DOB != "" {
		v := u.DOB
		dob = &v
	}

	return userModel{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		ContactNo: u.ContactNo,
		DOB:       dob,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

// GetByEmailAndContact matches both fields exactly, case-sensitive, no
// normalization. First match by insertion order wins.
func (r *UserRepository) GetByEmailAndContact(ctx context.Context, email, contactNo string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("email = ? AND contact_no = ?", email, contactNo).
		Order("created_at ASC").
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByEmailAndContact(ctx context.Context, email, contactNo string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("email = ? AND contact_no = ?", email, contactNo).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *UserRepository) GetByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	var ms []userModel
	tx := r.db.WithContext(ctx).
		Where("role = ?", string(role)).
		Order("created_at ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}
