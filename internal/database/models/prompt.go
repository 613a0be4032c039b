package models

import (
	"github.com/google/uuid"
)

// Prompt represents a reusable AI prompt. A prompt belongs to exactly one
// team (private library content) or has a nil TeamID with IsPublic true
// (community content). Published prompts are immutable except for UseCount,
// which only ever increases.
type Prompt struct {
	BaseModel
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string     `json:"description" gorm:"not null;size:500" validate:"required,max=500"`
	Content     string     `json:"content" gorm:"not null;type:text" validate:"required"`
	Category    string     `json:"category" gorm:"not null;size:50;index" validate:"required,max=50"`
	Tags        []string   `json:"tags" gorm:"serializer:json;type:jsonb"`
	AuthorID    *uuid.UUID `json:"author_id,omitempty" gorm:"type:uuid;index"`
	TeamID      *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	IsPublic    bool       `json:"is_public" gorm:"not null;default:false;index"`
	UseCount    int        `json:"use_count" gorm:"not null;default:0"`
}

// TableName returns the table name for Prompt
func (Prompt) TableName() string {
	return "prompts"
}
