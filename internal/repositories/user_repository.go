package repositories

import "melodia/internal/models"

// UserRepository defines the interface for user data access. GetByEmail and
// GetByUsername exist for the auth gateway's uniqueness checks and login.
type UserRepository interface {
	List(limit, offset int) ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	Update(id uint, changes map[string]any) (*models.User, error)
	Delete(id uint) error
}
