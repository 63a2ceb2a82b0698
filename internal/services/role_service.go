package services

import (
	"melodia/internal/models"
	"melodia/internal/repositories"
)

// RoleService handles business logic for roles.
type RoleService struct {
	repo repositories.RoleRepository
}

// NewRoleService creates a new RoleService.
func NewRoleService(repo repositories.RoleRepository) *RoleService {
	return &RoleService{
		repo: repo,
	}
}

// List retrieves roles ordered by id.
func (s *RoleService) List(limit, offset int) ([]models.Role, error) {
	return s.repo.List(limit, offset)
}

// GetByID retrieves a single role.
func (s *RoleService) GetByID(id uint) (*models.Role, error) {
	return s.repo.GetByID(id)
}

// Create inserts a new role. The id is always server-assigned and an absent
// permission set defaults to an empty map rather than NULL.
func (s *RoleService) Create(role *models.Role) error {
	role.ID = 0
	if role.Permissions == nil {
		role.Permissions = models.JSONMap{}
	}
	return s.repo.Create(role)
}

// Update applies a partial update and returns the post-update record.
func (s *RoleService) Update(id uint, upd models.RoleUpdate) (*models.Role, error) {
	return s.repo.Update(id, upd.Changes())
}

// Delete physically removes a role. Users referencing it block the delete
// via the store's foreign-key constraint.
func (s *RoleService) Delete(id uint) error {
	return s.repo.Delete(id)
}
