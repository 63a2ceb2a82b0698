package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"melodia/internal/apperrors"
	"melodia/internal/models"
)

// GORMArtistRepository is a GORM implementation of ArtistRepository.
type GORMArtistRepository struct {
	db *gorm.DB
}

// NewGORMArtistRepository creates a new instance of GORMArtistRepository.
func NewGORMArtistRepository(db *gorm.DB) *GORMArtistRepository {
	return &GORMArtistRepository{
		db: db,
	}
}

// List retrieves artists ordered by id ascending so pagination is
// deterministic across calls.
func (r *GORMArtistRepository) List(limit, offset int) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.Order("id").Limit(limit).Offset(offset).Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

// GetByID retrieves a single artist by its ID.
func (r *GORMArtistRepository) GetByID(id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("artist %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get artist %d: %w", id, err)
	}
	return &artist, nil
}

// Create inserts a new artist and fills in its generated ID.
func (r *GORMArtistRepository) Create(artist *models.Artist) error {
	if err := r.db.Create(artist).Error; err != nil {
		return fmt.Errorf("failed to create artist: %w", translateStoreError(err))
	}
	return nil
}

// Update applies a partial change set and returns the post-update record.
// An empty change set is a no-op that still resolves the record, so a
// missing id surfaces as not-found either way.
func (r *GORMArtistRepository) Update(id uint, changes map[string]any) (*models.Artist, error) {
	if len(changes) > 0 {
		res := r.db.Model(&models.Artist{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update artist %d: %w", id, translateStoreError(res.Error))
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("artist %d: %w", id, apperrors.ErrNotFound)
		}
	}
	return r.GetByID(id)
}

// Delete physically removes an artist. Missing rows are detected from the
// rows-affected count rather than a pre-check, to avoid a race between the
// existence check and the delete.
func (r *GORMArtistRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Artist{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete artist %d: %w", id, translateStoreError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artist %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
