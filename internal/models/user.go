package models

import "time"

// User represents a registered account. The password hash is never
// serialized; registered_at is set once at creation and never updated.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"type:varchar(255);not null" validate:"required,email"`
	Username       string    `json:"username" gorm:"type:varchar(100);not null" validate:"required,min=3,max=100"`
	RegisteredAt   time.Time `json:"registered_at" gorm:"autoCreateTime"`
	RoleID         *uint     `json:"role_id"`
	Role           *Role     `json:"-" gorm:"foreignKey:RoleID"`
	HashedPassword string    `json:"-" gorm:"column:hashed_password;type:varchar(255);not null"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`
	IsSuperuser    bool      `json:"is_superuser" gorm:"not null;default:false"`
	IsVerified     bool      `json:"is_verified" gorm:"not null;default:false"`
}

// UserUpdate is a partial-update payload for a user. A non-nil Password is
// hashed by the service before it reaches the store; registered_at and id are
// immutable and deliberately absent here.
type UserUpdate struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Username    *string `json:"username" validate:"omitempty,min=3,max=100"`
	RoleID      *uint   `json:"role_id"`
	Password    *string `json:"password" validate:"omitempty,min=6"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
	IsVerified  *bool   `json:"is_verified"`
}

// Changes returns the set of columns to write for this update. The password
// is excluded; the service translates it into hashed_password itself.
func (u UserUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if u.Email != nil {
		changes["email"] = *u.Email
	}
	if u.Username != nil {
		changes["username"] = *u.Username
	}
	if u.RoleID != nil {
		changes["role_id"] = *u.RoleID
	}
	if u.IsActive != nil {
		changes["is_active"] = *u.IsActive
	}
	if u.IsSuperuser != nil {
		changes["is_superuser"] = *u.IsSuperuser
	}
	if u.IsVerified != nil {
		changes["is_verified"] = *u.IsVerified
	}
	return changes
}
