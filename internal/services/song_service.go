package services

import (
	"melodia/internal/models"
	"melodia/internal/repositories"
	"melodia/pkg/rabbitmq"
)

// SongService handles business logic for songs.
type SongService struct {
	repo     repositories.SongRepository
	mqClient *rabbitmq.Client
}

// NewSongService creates a new SongService.
func NewSongService(repo repositories.SongRepository, mqClient *rabbitmq.Client) *SongService {
	return &SongService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// List retrieves songs ordered by id.
func (s *SongService) List(limit, offset int) ([]models.Song, error) {
	return s.repo.List(limit, offset)
}

// GetByID retrieves a single song.
func (s *SongService) GetByID(id uint) (*models.Song, error) {
	return s.repo.GetByID(id)
}

// Create inserts a new song and publishes a song.created event.
func (s *SongService) Create(song *models.Song) error {
	song.ID = 0
	if err := s.repo.Create(song); err != nil {
		return err
	}
	publishCatalogEvent(s.mqClient, "song.created", song)
	return nil
}

// Update applies a partial update and returns the post-update record.
func (s *SongService) Update(id uint, upd models.SongUpdate) (*models.Song, error) {
	return s.repo.Update(id, upd.Changes())
}

// Delete physically removes a song and publishes a song.deleted event.
func (s *SongService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	publishCatalogEvent(s.mqClient, "song.deleted", map[string]any{"id": id})
	return nil
}
