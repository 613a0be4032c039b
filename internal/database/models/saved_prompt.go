package models

import (
	"github.com/google/uuid"
)

// SavedPrompt is a user's personal bookmark of a prompt, optionally placed
// in one of the user's folders. The composite unique index enforces at most
// one save per (user, prompt) pair. FolderID is a soft reference: deleting a
// folder reassigns its saves to nil explicitly, not via a database cascade.
type SavedPrompt struct {
	BaseModel
	UserID   uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_saved_prompts_user_prompt" validate:"required"`
	PromptID uuid.UUID  `json:"prompt_id" gorm:"type:uuid;not null;uniqueIndex:idx_saved_prompts_user_prompt;index" validate:"required"`
	FolderID *uuid.UUID `json:"folder_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Prompt Prompt `json:"prompt,omitempty" gorm:"foreignKey:PromptID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SavedPrompt
func (SavedPrompt) TableName() string {
	return "saved_prompts"
}
