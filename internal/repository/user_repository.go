package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	UpdateToken(ctx context.Context, userID uuid.UUID, token *string, expiresAt *time.Time) error
	ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// userRepositoryImpl is the GORM implementation of UserRepository
type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create creates a new user
func (r *userRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID
func (r *userRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDs finds all users matching the given IDs
func (r *userRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*domain.User
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail finds a user by email, case-insensitively
func (r *userRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(email)).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByToken finds the user holding the given active token
func (r *userRepositoryImpl) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateToken replaces the user's active token. Passing nil clears it.
func (r *userRepositoryImpl) UpdateToken(ctx context.Context, userID uuid.UUID, token *string, expiresAt *time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"token":            token,
			"token_expires_at": expiresAt,
		}).Error
}

// ClearExpiredTokens removes tokens whose expiry has passed and returns
// the number of users affected
func (r *userRepositoryImpl) ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("token IS NOT NULL AND token_expires_at < ?", now).
		Updates(map[string]interface{}{
			"token":            nil,
			"token_expires_at": nil,
		})
	return result.RowsAffected, result.Error
}

// Count returns the total number of users
func (r *userRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error
	return count, err
}
