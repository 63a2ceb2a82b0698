package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"melodia/internal/apperrors"
	"melodia/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// List retrieves users ordered by id ascending.
func (r *GORMUserRepository) List(limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by their username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", username, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// Create inserts a new user. RegisteredAt is filled by the store at insert
// time and never touched again.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", translateStoreError(err))
	}
	return nil
}

// Update applies a partial change set and returns the post-update record.
func (r *GORMUserRepository) Update(id uint, changes map[string]any) (*models.User, error) {
	if len(changes) > 0 {
		res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update user %d: %w", id, translateStoreError(res.Error))
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
		}
	}
	return r.GetByID(id)
}

// Delete physically removes a user, reporting not-found from the
// rows-affected count.
func (r *GORMUserRepository) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, translateStoreError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
