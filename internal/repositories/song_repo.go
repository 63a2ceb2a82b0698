package repositories

import "melodia/internal/models"

// SongRepository defines the interface for song data access.
type SongRepository interface {
	List(limit, offset int) ([]models.Song, error)
	GetByID(id uint) (*models.Song, error)
	Create(song *models.Song) error
	Update(id uint, changes map[string]any) (*models.Song, error)
	Delete(id uint) error
}
