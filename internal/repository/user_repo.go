package repository

import (
	"gorm.io/gorm"

	"github.com/daonlab/crm-calendar-backend/internal/domain"
)

// UserRepository handles user data operations
type UserRepository interface {
	FindByID(id string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	Create(user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository backed by gorm
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user by id, returning (nil, nil) when absent
func (r *userRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves a user by email, returning (nil, nil) when absent
func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create persists a new user
func (r *userRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}
