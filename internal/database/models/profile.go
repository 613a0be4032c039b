package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors the auth provider's user record. The ID is the Supabase
// user id, so unlike the other models it is never generated locally.
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" validate:"required"`
	Email     string    `json:"email" gorm:"not null;size:255;uniqueIndex" validate:"required,email,max=255"`
	FullName  *string   `json:"full_name,omitempty" gorm:"size:200"`
	AvatarURL *string   `json:"avatar_url,omitempty" gorm:"size:500"`
	Role      *string   `json:"role,omitempty" gorm:"size:50"` // PM role for category suggestions
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
