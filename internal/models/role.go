package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is an arbitrary key-value mapping stored as a JSON column.
type JSONMap map[string]any

// Value implements driver.Valuer so GORM can persist the map as JSON.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner to read the JSON column back into the map.
func (m *JSONMap) Scan(value any) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONMap", value)
	}
	return json.Unmarshal(data, m)
}

// Role represents an authorization role with a free-form permission set.
type Role struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Permissions JSONMap `json:"permissions" gorm:"type:json"`
}

// RoleUpdate is a partial-update payload for a role. Nil fields are left
// unchanged; an explicit JSON null is indistinguishable from an absent field
// and is also left unchanged.
type RoleUpdate struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Permissions *JSONMap `json:"permissions"`
}

// Changes returns the set of columns to write for this update.
func (u RoleUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Permissions != nil {
		changes["permissions"] = *u.Permissions
	}
	return changes
}
