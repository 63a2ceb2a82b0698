package services

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"melodia/internal/models"
	"melodia/internal/repositories"
	"melodia/pkg/rabbitmq"
)

// ArtistService handles business logic for artists and publishes catalog
// events for downstream consumers.
type ArtistService struct {
	repo     repositories.ArtistRepository
	mqClient *rabbitmq.Client
}

// NewArtistService creates a new ArtistService. A nil MQ client disables
// event publishing without affecting request handling.
func NewArtistService(repo repositories.ArtistRepository, mqClient *rabbitmq.Client) *ArtistService {
	return &ArtistService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// List retrieves artists ordered by id.
func (s *ArtistService) List(limit, offset int) ([]models.Artist, error) {
	return s.repo.List(limit, offset)
}

// GetByID retrieves a single artist.
func (s *ArtistService) GetByID(id uint) (*models.Artist, error) {
	return s.repo.GetByID(id)
}

// Create inserts a new artist and publishes an artist.created event.
func (s *ArtistService) Create(artist *models.Artist) error {
	artist.ID = 0
	if err := s.repo.Create(artist); err != nil {
		return err
	}
	publishCatalogEvent(s.mqClient, "artist.created", artist)
	return nil
}

// Update applies a partial update and returns the post-update record.
func (s *ArtistService) Update(id uint, upd models.ArtistUpdate) (*models.Artist, error) {
	return s.repo.Update(id, upd.Changes())
}

// Delete physically removes an artist and publishes an artist.deleted
// event. The store's foreign keys are RESTRICT, not CASCADE: an artist
// that still has albums or songs cannot be deleted and the attempt fails
// with an integrity error.
func (s *ArtistService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	publishCatalogEvent(s.mqClient, "artist.deleted", map[string]any{"id": id})
	return nil
}

// publishCatalogEvent sends a best-effort catalog event. A missing broker
// or marshal failure is logged, never surfaced to the request.
func publishCatalogEvent(mqClient *rabbitmq.Client, event string, payload any) {
	if mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logrus.Warnf("failed to marshal %s event: %v", event, err)
		return
	}
	if err := mqClient.Publish(event, body); err != nil {
		logrus.Warnf("failed to publish %s event: %v", event, err)
	}
}
