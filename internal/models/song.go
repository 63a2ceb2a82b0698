package models

// Song represents a track on an album. Duration is in seconds.
type Song struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Title    string  `json:"title" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Duration int     `json:"duration" gorm:"not null" validate:"required,gt=0"`
	AlbumID  uint    `json:"album_id" validate:"required"`
	Album    *Album  `json:"-" gorm:"foreignKey:AlbumID"`
	ArtistID uint    `json:"artist_id" validate:"required"`
	Artist   *Artist `json:"-" gorm:"foreignKey:ArtistID"`
}

// SongUpdate is a partial-update payload for a song.
type SongUpdate struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=255"`
	Duration *int    `json:"duration" validate:"omitempty,gt=0"`
	AlbumID  *uint   `json:"album_id"`
	ArtistID *uint   `json:"artist_id"`
}

// Changes returns the set of columns to write for this update.
func (u SongUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Duration != nil {
		changes["duration"] = *u.Duration
	}
	if u.AlbumID != nil {
		changes["album_id"] = *u.AlbumID
	}
	if u.ArtistID != nil {
		changes["artist_id"] = *u.ArtistID
	}
	return changes
}
