package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"melodia/internal/apperrors"
	"melodia/internal/models"
)

// GORMRoleRepository is a GORM implementation of RoleRepository.
type GORMRoleRepository struct {
	db *gorm.DB
}

// NewGORMRoleRepository creates a new instance of GORMRoleRepository.
func NewGORMRoleRepository(db *gorm.DB) *GORMRoleRepository {
	return &GORMRoleRepository{
		db: db,
	}
}

// List retrieves roles ordered by id ascending.
func (r *GORMRoleRepository) List(limit, offset int) ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.Order("id").Limit(limit).Offset(offset).Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

// GetByID retrieves a single role by its ID.
func (r *GORMRoleRepository) GetByID(id uint) (*models.Role, error) {
	var role models.Role
	if err := r.db.First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get role %d: %w", id, err)
	}
	return &role, nil
}

// Create inserts a new role and fills in its generated ID.
func (r *GORMRoleRepository) Create(role *models.Role) error {
	if err := r.db.Create(role).Error; err != nil {
		return fmt.Errorf("failed to create role: %w", translateStoreError(err))
	}
	return nil
}

// Update applies a partial change set and returns the post-update record.
func (r *GORMRoleRepository) Update(id uint, changes map[string]any) (*models.Role, error) {
	if len(changes) > 0 {
		res := r.db.Model(&models.Role{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update role %d: %w", id, translateStoreError(res.Error))
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("role %d: %w", id, apperrors.ErrNotFound)
		}
	}
	return r.GetByID(id)
}

// Delete physically removes a role, reporting not-found from the
// rows-affected count.
func (r *GORMRoleRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Role{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete role %d: %w", id, translateStoreError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("role %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
