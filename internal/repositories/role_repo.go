package repositories

import "melodia/internal/models"

// RoleRepository defines the interface for role data access.
type RoleRepository interface {
	List(limit, offset int) ([]models.Role, error)
	GetByID(id uint) (*models.Role, error)
	Create(role *models.Role) error
	Update(id uint, changes map[string]any) (*models.Role, error)
	Delete(id uint) error
}
