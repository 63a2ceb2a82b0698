package repositories

import "melodia/internal/models"

// ArtistRepository defines the interface for artist data access.
type ArtistRepository interface {
	List(limit, offset int) ([]models.Artist, error)
	GetByID(id uint) (*models.Artist, error)
	Create(artist *models.Artist) error
	Update(id uint, changes map[string]any) (*models.Artist, error)
	Delete(id uint) error
}
