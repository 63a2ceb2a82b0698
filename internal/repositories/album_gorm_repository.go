package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"melodia/internal/apperrors"
	"melodia/internal/models"
)

// GORMAlbumRepository is a GORM implementation of AlbumRepository.
type GORMAlbumRepository struct {
	db *gorm.DB
}

// NewGORMAlbumRepository creates a new instance of GORMAlbumRepository.
func NewGORMAlbumRepository(db *gorm.DB) *GORMAlbumRepository {
	return &GORMAlbumRepository{
		db: db,
	}
}

// List retrieves albums ordered by id ascending.
func (r *GORMAlbumRepository) List(limit, offset int) ([]models.Album, error) {
	var albums []models.Album
	if err := r.db.Order("id").Limit(limit).Offset(offset).Find(&albums).Error; err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}

// GetByID retrieves a single album by its ID.
func (r *GORMAlbumRepository) GetByID(id uint) (*models.Album, error) {
	var album models.Album
	if err := r.db.First(&album, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("album %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get album %d: %w", id, err)
	}
	return &album, nil
}

// Create inserts a new album. A dangling artist_id is rejected by the
// store's foreign-key constraint and surfaces as an integrity error.
func (r *GORMAlbumRepository) Create(album *models.Album) error {
	if err := r.db.Create(album).Error; err != nil {
		return fmt.Errorf("failed to create album: %w", translateStoreError(err))
	}
	return nil
}

// Update applies a partial change set and returns the post-update record.
func (r *GORMAlbumRepository) Update(id uint, changes map[string]any) (*models.Album, error) {
	if len(changes) > 0 {
		res := r.db.Model(&models.Album{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update album %d: %w", id, translateStoreError(res.Error))
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("album %d: %w", id, apperrors.ErrNotFound)
		}
	}
	return r.GetByID(id)
}

// Delete physically removes an album, reporting not-found from the
// rows-affected count.
func (r *GORMAlbumRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Album{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete album %d: %w", id, translateStoreError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("album %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
