package services

import (
	"melodia/internal/models"
	"melodia/internal/repositories"
	"melodia/pkg/rabbitmq"
)

// AlbumService handles business logic for albums.
type AlbumService struct {
	repo     repositories.AlbumRepository
	mqClient *rabbitmq.Client
}

// NewAlbumService creates a new AlbumService.
func NewAlbumService(repo repositories.AlbumRepository, mqClient *rabbitmq.Client) *AlbumService {
	return &AlbumService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// List retrieves albums ordered by id.
func (s *AlbumService) List(limit, offset int) ([]models.Album, error) {
	return s.repo.List(limit, offset)
}

// GetByID retrieves a single album.
func (s *AlbumService) GetByID(id uint) (*models.Album, error) {
	return s.repo.GetByID(id)
}

// Create inserts a new album and publishes an album.created event.
func (s *AlbumService) Create(album *models.Album) error {
	album.ID = 0
	if err := s.repo.Create(album); err != nil {
		return err
	}
	publishCatalogEvent(s.mqClient, "album.created", album)
	return nil
}

// Update applies a partial update and returns the post-update record.
func (s *AlbumService) Update(id uint, upd models.AlbumUpdate) (*models.Album, error) {
	return s.repo.Update(id, upd.Changes())
}

// Delete physically removes an album and publishes an album.deleted event.
// Songs referencing the album block the delete via the store's foreign-key
// constraint.
func (s *AlbumService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	publishCatalogEvent(s.mqClient, "album.deleted", map[string]any{"id": id})
	return nil
}
