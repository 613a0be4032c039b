package models

import (
	"github.com/google/uuid"
)

// PromptRating is a user's 1-5 star rating of a prompt. At most one rating
// per (prompt, user); a second submission updates the existing row. The
// average is always recomputed from rows, never stored.
type PromptRating struct {
	BaseModel
	PromptID uuid.UUID `json:"prompt_id" gorm:"type:uuid;not null;uniqueIndex:idx_prompt_ratings_prompt_user;index" validate:"required"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_prompt_ratings_prompt_user" validate:"required"`
	Rating   int       `json:"rating" gorm:"not null" validate:"required,min=1,max=5"`

	// Relationships
	Prompt Prompt `json:"prompt,omitempty" gorm:"foreignKey:PromptID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PromptRating
func (PromptRating) TableName() string {
	return "prompt_ratings"
}
