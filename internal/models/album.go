package models

import "time"

// Album represents a release by an artist. ReleaseDate is optional and may
// be stored as NULL.
type Album struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	ReleaseDate *time.Time `json:"release_date"`
	ArtistID    uint       `json:"artist_id" validate:"required"`
	Artist      *Artist    `json:"-" gorm:"foreignKey:ArtistID"`
}

// AlbumUpdate is a partial-update payload for an album.
type AlbumUpdate struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	ReleaseDate *time.Time `json:"release_date"`
	ArtistID    *uint      `json:"artist_id"`
}

// Changes returns the set of columns to write for this update.
func (u AlbumUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.ReleaseDate != nil {
		changes["release_date"] = *u.ReleaseDate
	}
	if u.ArtistID != nil {
		changes["artist_id"] = *u.ArtistID
	}
	return changes
}
