package service_test

import (
	"testing"
	"time"

	"promptvault-backend/internal/database/models"
	"promptvault-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"under a minute", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-2 * 24 * time.Hour), "2d ago"},
		{"over a week falls back to a date", now.Add(-10 * 24 * time.Hour), "Aug 20, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.FormatTimeAgo(tt.at, now))
		})
	}
}

func TestBuildActivityFeed(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	prompt := makePrompt("Sprint Planning Assistant", "d", "Agile", nil, 0, now)

	save := models.SavedPrompt{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: now.Add(-10 * time.Minute)},
		UserID:    uuid.New(),
		PromptID:  prompt.ID,
	}
	orphan := models.SavedPrompt{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: now.Add(-2 * time.Hour)},
		UserID:    uuid.New(),
		PromptID:  uuid.New(),
	}

	entries := service.BuildActivityFeed([]models.SavedPrompt{save, orphan}, []models.Prompt{prompt}, now)

	assert.Len(t, entries, 2)
	assert.Equal(t, service.ActivitySaved, entries[0].Type)
	assert.Equal(t, "Team member", entries[0].UserName)
	assert.Equal(t, "Sprint Planning Assistant", entries[0].PromptTitle)
	assert.Equal(t, "saved a prompt", entries[0].Detail)
	assert.Equal(t, "10m ago", entries[0].TimeAgo)

	// a save whose prompt is outside the scope still shows up
	assert.Equal(t, "Unknown prompt", entries[1].PromptTitle)
	assert.Equal(t, "2h ago", entries[1].TimeAgo)
}

func TestBuildActivityFeed_Empty(t *testing.T) {
	entries := service.BuildActivityFeed(nil, nil, time.Now())
	assert.Empty(t, entries)
}
