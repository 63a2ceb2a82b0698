package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"melodia/internal/models"
	"melodia/internal/repositories"
)

// UserService handles business logic for the generic user CRUD. Unlike the
// auth gateway's Register it performs no uniqueness checks, matching the
// store schema, but it hashes passwords the same way — plaintext never
// reaches the store from either path.
type UserService struct {
	repo       repositories.UserRepository
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

// List retrieves users ordered by id.
func (s *UserService) List(limit, offset int) ([]models.User, error) {
	return s.repo.List(limit, offset)
}

// GetByID retrieves a single user.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// Create inserts a new user with a freshly hashed password. The id is
// server-assigned; registered_at is filled by the store.
func (s *UserService) Create(user *models.User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.ID = 0
	user.HashedPassword = string(hashed)
	return s.repo.Create(user)
}

// Update applies a partial update and returns the post-update record. A
// supplied password is hashed here so the change set only ever carries the
// hash.
func (s *UserService) Update(id uint, upd models.UserUpdate) (*models.User, error) {
	changes := upd.Changes()
	if upd.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		changes["hashed_password"] = string(hashed)
	}
	return s.repo.Update(id, changes)
}

// Delete physically removes a user.
func (s *UserService) Delete(id uint) error {
	return s.repo.Delete(id)
}
