package repositories

import "melodia/internal/models"

// AlbumRepository defines the interface for album data access.
type AlbumRepository interface {
	List(limit, offset int) ([]models.Album, error)
	GetByID(id uint) (*models.Album, error)
	Create(album *models.Album) error
	Update(id uint, changes map[string]any) (*models.Album, error)
	Delete(id uint) error
}
