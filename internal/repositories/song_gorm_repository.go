package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"melodia/internal/apperrors"
	"melodia/internal/models"
)

// GORMSongRepository is a GORM implementation of SongRepository.
type GORMSongRepository struct {
	db *gorm.DB
}

// NewGORMSongRepository creates a new instance of GORMSongRepository.
func NewGORMSongRepository(db *gorm.DB) *GORMSongRepository {
	return &GORMSongRepository{
		db: db,
	}
}

// List retrieves songs ordered by id ascending.
func (r *GORMSongRepository) List(limit, offset int) ([]models.Song, error) {
	var songs []models.Song
	if err := r.db.Order("id").Limit(limit).Offset(offset).Find(&songs).Error; err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	return songs, nil
}

// GetByID retrieves a single song by its ID.
func (r *GORMSongRepository) GetByID(id uint) (*models.Song, error) {
	var song models.Song
	if err := r.db.First(&song, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("song %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get song %d: %w", id, err)
	}
	return &song, nil
}

// Create inserts a new song. Dangling album_id or artist_id values are
// rejected by the store's foreign-key constraints.
func (r *GORMSongRepository) Create(song *models.Song) error {
	if err := r.db.Create(song).Error; err != nil {
		return fmt.Errorf("failed to create song: %w", translateStoreError(err))
	}
	return nil
}

// Update applies a partial change set and returns the post-update record.
func (r *GORMSongRepository) Update(id uint, changes map[string]any) (*models.Song, error) {
	if len(changes) > 0 {
		res := r.db.Model(&models.Song{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update song %d: %w", id, translateStoreError(res.Error))
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("song %d: %w", id, apperrors.ErrNotFound)
		}
	}
	return r.GetByID(id)
}

// Delete physically removes a song, reporting not-found from the
// rows-affected count.
func (r *GORMSongRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Song{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete song %d: %w", id, translateStoreError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("song %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
