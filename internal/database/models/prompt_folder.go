package models

import (
	"github.com/google/uuid"
)

// PromptFolder groups a user's saved prompts. Folders form a flat namespace
// per user (no nesting). Color is assigned round-robin from a fixed palette
// at creation time.
type PromptFolder struct {
	BaseModel
	Name   string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	UserID uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	Color  string     `json:"color" gorm:"not null;size:20"`
}

// TableName returns the table name for PromptFolder
func (PromptFolder) TableName() string {
	return "prompt_folders"
}
