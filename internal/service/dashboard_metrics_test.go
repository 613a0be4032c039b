package service_test

import (
	"testing"
	"time"

	"promptvault-backend/internal/database/models"
	"promptvault-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func feedbackFor(promptID uuid.UUID, helpful bool) models.PromptFeedback {
	return models.PromptFeedback{
		BaseModel: models.BaseModel{ID: uuid.New()},
		PromptID:  promptID,
		UserID:    uuid.New(),
		Helpful:   helpful,
	}
}

func ratingFor(promptID uuid.UUID, rating int) models.PromptRating {
	return models.PromptRating{
		BaseModel: models.BaseModel{ID: uuid.New()},
		PromptID:  promptID,
		UserID:    uuid.New(),
		Rating:    rating,
	}
}

func TestComputeDashboardStats(t *testing.T) {
	t.Run("aggregates uses, success rate and rating", func(t *testing.T) {
		p1 := makePrompt("A", "d", "Agile", nil, 10, time.Now())
		p2 := makePrompt("B", "d", "Risk", nil, 5, time.Now())
		prompts := []models.Prompt{p1, p2}
		feedback := []models.PromptFeedback{
			feedbackFor(p1.ID, true),
			feedbackFor(p1.ID, true),
			feedbackFor(p2.ID, false),
		}
		ratings := []models.PromptRating{
			ratingFor(p1.ID, 5),
			ratingFor(p2.ID, 4),
			ratingFor(p2.ID, 4),
		}

		stats := service.ComputeDashboardStats(prompts, 3, feedback, ratings)

		assert.Equal(t, 2, stats.TotalPrompts)
		assert.Equal(t, 3, stats.TeamMembers)
		assert.Equal(t, 15, stats.TotalUses)
		// 2 helpful of 3 votes = 66.66 -> 67
		assert.Equal(t, 67, stats.AvgSuccessRate)
		// (5+4+4)/3 = 4.333 -> 4.3
		assert.Equal(t, 4.3, stats.AvgRating)
	})

	t.Run("empty inputs yield zeros, not NaN", func(t *testing.T) {
		stats := service.ComputeDashboardStats(nil, 0, nil, nil)
		assert.Equal(t, 0, stats.TotalPrompts)
		assert.Equal(t, 0, stats.TotalUses)
		assert.Equal(t, 0, stats.AvgSuccessRate)
		assert.Equal(t, 0.0, stats.AvgRating)
		// a team is never smaller than the viewer
		assert.Equal(t, 1, stats.TeamMembers)
	})
}

func TestComputeCategoryStats(t *testing.T) {
	agile1 := makePrompt("Sprint", "d", "Agile", nil, 20, time.Now())
	agile2 := makePrompt("Retro", "d", "Agile", nil, 5, time.Now())
	risk := makePrompt("Register", "d", "Risk", nil, 40, time.Now())
	prompts := []models.Prompt{agile1, agile2, risk}
	feedback := []models.PromptFeedback{
		feedbackFor(agile1.ID, true),
		feedbackFor(agile2.ID, false),
		feedbackFor(risk.ID, true),
		feedbackFor(risk.ID, true),
	}

	stats := service.ComputeCategoryStats(prompts, feedback)

	assert.Len(t, stats, 2)
	// Risk has 40 uses, Agile 25: descending by total uses
	assert.Equal(t, "Risk", stats[0].Category)
	assert.Equal(t, 1, stats[0].PromptCount)
	assert.Equal(t, 40, stats[0].TotalUses)
	assert.Equal(t, 2, stats[0].FeedbackCount)
	assert.Equal(t, 100, stats[0].SuccessRate)

	assert.Equal(t, "Agile", stats[1].Category)
	assert.Equal(t, 2, stats[1].PromptCount)
	assert.Equal(t, 25, stats[1].TotalUses)
	assert.Equal(t, 50, stats[1].SuccessRate)
}

func TestComputeCategoryStats_Empty(t *testing.T) {
	stats := service.ComputeCategoryStats(nil, nil)
	assert.Empty(t, stats)
}

func TestComputeTopPrompts(t *testing.T) {
	t.Run("orders by use count and annotates summaries", func(t *testing.T) {
		low := makePrompt("Low", "d", "Agile", nil, 1, time.Now())
		high := makePrompt("High", "d", "Risk", nil, 9, time.Now())
		prompts := []models.Prompt{low, high}
		feedback := []models.PromptFeedback{feedbackFor(high.ID, true), feedbackFor(high.ID, false)}
		ratings := []models.PromptRating{ratingFor(high.ID, 3), ratingFor(high.ID, 4)}

		top := service.ComputeTopPrompts(prompts, feedback, ratings, 10)

		assert.Len(t, top, 2)
		assert.Equal(t, "High", top[0].Title)
		assert.Equal(t, 50, top[0].SuccessRate)
		assert.Equal(t, 3.5, top[0].AvgRating)
		assert.Equal(t, 2, top[0].FeedbackCount)
		assert.Equal(t, 2, top[0].RatingCount)
		assert.Equal(t, "Low", top[1].Title)
		assert.Equal(t, 0, top[1].SuccessRate)
		assert.Equal(t, 0.0, top[1].AvgRating)
	})

	t.Run("caps at the limit", func(t *testing.T) {
		prompts := make([]models.Prompt, 15)
		for i := range prompts {
			prompts[i] = makePrompt("P", "d", "Agile", nil, i, time.Now())
		}
		top := service.ComputeTopPrompts(prompts, nil, nil, 10)
		assert.Len(t, top, 10)
		assert.Equal(t, 14, top[0].UseCount)
	})

	t.Run("fewer prompts than limit", func(t *testing.T) {
		prompts := []models.Prompt{makePrompt("Only", "d", "Agile", nil, 2, time.Now())}
		top := service.ComputeTopPrompts(prompts, nil, nil, 10)
		assert.Len(t, top, 1)
	})
}
