package models

// Artist represents a recording artist.
type Artist struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Genre   string `json:"genre" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Country string `json:"country" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
}

// ArtistUpdate is a partial-update payload for an artist.
type ArtistUpdate struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Genre   *string `json:"genre" validate:"omitempty,max=100"`
	Country *string `json:"country" validate:"omitempty,max=100"`
}

// Changes returns the set of columns to write for this update. Nil fields,
// including explicit JSON nulls, are left unchanged.
func (u ArtistUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Genre != nil {
		changes["genre"] = *u.Genre
	}
	if u.Country != nil {
		changes["country"] = *u.Country
	}
	return changes
}
