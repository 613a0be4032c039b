package models

import (
	"github.com/google/uuid"
)

// PromptFeedback is a helpful/not-helpful vote on a prompt, upsert-only,
// keyed by (prompt, user).
type PromptFeedback struct {
	BaseModel
	PromptID uuid.UUID `json:"prompt_id" gorm:"type:uuid;not null;uniqueIndex:idx_prompt_feedback_prompt_user;index" validate:"required"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_prompt_feedback_prompt_user" validate:"required"`
	Helpful  bool      `json:"helpful" gorm:"not null"`

	// Relationships
	Prompt Prompt `json:"prompt,omitempty" gorm:"foreignKey:PromptID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PromptFeedback
func (PromptFeedback) TableName() string {
	return "prompt_feedback"
}
