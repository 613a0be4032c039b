package service

import (
	"fmt"
	"time"

	"promptvault-backend/internal/database/models"
)

// ActivityType classifies an entry in the dashboard activity feed
type ActivityType string

const (
	ActivitySaved ActivityType = "saved"
	// Reserved for rating and feedback events once those are surfaced
	// in the feed.
	ActivityRated    ActivityType = "rated"
	ActivityFeedback ActivityType = "feedback"
)

// ActivityEntry is one row of the recent-activity feed
type ActivityEntry struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	UserName    string       `json:"user_name"`
	PromptTitle string       `json:"prompt_title"`
	Detail      string       `json:"detail"`
	TimeAgo     string       `json:"time_ago"`
	OccurredAt  time.Time    `json:"occurred_at"`
}

// BuildActivityFeed turns recent saved-prompt rows into feed entries,
// resolving prompt titles from the given prompt set. Saves referencing a
// prompt outside the set still appear, with a placeholder title. User names
// are not resolved per entry; the feed shows a generic actor label.
func BuildActivityFeed(saves []models.SavedPrompt, prompts []models.Prompt, now time.Time) []ActivityEntry {
	titles := make(map[string]string, len(prompts))
	for _, p := range prompts {
		titles[p.ID.String()] = p.Title
	}

	entries := make([]ActivityEntry, 0, len(saves))
	for _, s := range saves {
		title, ok := titles[s.PromptID.String()]
		if !ok {
			title = "Unknown prompt"
		}
		entries = append(entries, ActivityEntry{
			ID:          s.ID.String(),
			Type:        ActivitySaved,
			UserName:    "Team member",
			PromptTitle: title,
			Detail:      "saved a prompt",
			TimeAgo:     FormatTimeAgo(s.CreatedAt, now),
			OccurredAt:  s.CreatedAt,
		})
	}
	return entries
}

// FormatTimeAgo renders an event time relative to now: "just now" under a
// minute, then minutes, hours and days, falling back to a plain date after
// a week.
func FormatTimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
