// Package repository provides the persistence layer behind the auth and
// calculation services. Interfaces are defined here so services can be
// constructed against in-memory fakes in tests; the gorm implementations
// back the running server.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ubudab109/number-discussion/internal/domain"
)

// UserRepository persists and looks up users.
type UserRepository interface {
	// Create inserts a new user. Fails with domain.ErrDuplicateUsername if
	// the username is already taken.
	Create(ctx context.Context, user *domain.User) error
	// FindByUsername returns the user with the given username (exact,
	// case-sensitive match) or domain.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// GormUserRepository is the MySQL-backed UserRepository.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository constructs a GormUserRepository over db.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
