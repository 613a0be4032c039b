package service

import (
	"math"
	"sort"

	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
)

// DashboardStats are the headline numbers on the team dashboard
type DashboardStats struct {
	TotalPrompts   int     `json:"total_prompts"`
	TeamMembers    int     `json:"team_members"`
	TotalUses      int     `json:"total_uses"`
	AvgSuccessRate int     `json:"avg_success_rate"`
	AvgRating      float64 `json:"avg_rating"`
}

// CategoryStat summarises one prompt category
type CategoryStat struct {
	Category      string `json:"category"`
	PromptCount   int    `json:"prompt_count"`
	TotalUses     int    `json:"total_uses"`
	FeedbackCount int    `json:"feedback_count"`
	SuccessRate   int    `json:"success_rate"`
}

// TopPrompt is one entry of the most-used prompts leaderboard
type TopPrompt struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	UseCount      int       `json:"use_count"`
	SuccessRate   int       `json:"success_rate"`
	AvgRating     float64   `json:"avg_rating"`
	FeedbackCount int       `json:"feedback_count"`
	RatingCount   int       `json:"rating_count"`
}

// successRate is the percentage of helpful votes, rounded, 0 when there are
// no votes at all.
func successRate(helpful, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(helpful) / float64(total) * 100))
}

// averageRating rounds the mean rating to one decimal, 0 for no ratings.
func averageRating(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}

// ComputeDashboardStats aggregates prompt, membership, feedback and rating
// rows into the headline dashboard numbers. Averages over empty inputs come
// out as zero rather than NaN, and a team always counts at least the viewer
// as a member.
func ComputeDashboardStats(prompts []models.Prompt, memberCount int, feedback []models.PromptFeedback, ratings []models.PromptRating) DashboardStats {
	stats := DashboardStats{
		TotalPrompts: len(prompts),
		TeamMembers:  memberCount,
	}
	if stats.TeamMembers < 1 {
		stats.TeamMembers = 1
	}
	for _, p := range prompts {
		stats.TotalUses += p.UseCount
	}

	helpful := 0
	for _, f := range feedback {
		if f.Helpful {
			helpful++
		}
	}
	stats.AvgSuccessRate = successRate(helpful, len(feedback))

	ratingSum := 0
	for _, r := range ratings {
		ratingSum += r.Rating
	}
	stats.AvgRating = averageRating(ratingSum, len(ratings))

	return stats
}

// ComputeCategoryStats groups prompts by exact category value, folds per
// prompt feedback into each group, and orders the groups by total uses,
// most used first. Ties keep the order categories were first seen in. Only
// categories actually present in the prompt set appear.
func ComputeCategoryStats(prompts []models.Prompt, feedback []models.PromptFeedback) []CategoryStat {
	type tally struct {
		total   int
		helpful int
	}
	byPrompt := make(map[uuid.UUID]tally, len(prompts))
	for _, f := range feedback {
		t := byPrompt[f.PromptID]
		t.total++
		if f.Helpful {
			t.helpful++
		}
		byPrompt[f.PromptID] = t
	}

	index := make(map[string]int, 8)
	stats := make([]CategoryStat, 0, 8)
	helpfulByCategory := make([]int, 0, 8)
	for _, p := range prompts {
		i, ok := index[p.Category]
		if !ok {
			i = len(stats)
			index[p.Category] = i
			stats = append(stats, CategoryStat{Category: p.Category})
			helpfulByCategory = append(helpfulByCategory, 0)
		}
		stats[i].PromptCount++
		stats[i].TotalUses += p.UseCount
		t := byPrompt[p.ID]
		stats[i].FeedbackCount += t.total
		helpfulByCategory[i] += t.helpful
	}
	for i := range stats {
		stats[i].SuccessRate = successRate(helpfulByCategory[i], stats[i].FeedbackCount)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalUses > stats[j].TotalUses
	})
	return stats
}

// ComputeTopPrompts returns up to limit prompts ordered by use count, most
// used first, each annotated with its feedback success rate and average
// rating. The input slices are not modified.
func ComputeTopPrompts(prompts []models.Prompt, feedback []models.PromptFeedback, ratings []models.PromptRating, limit int) []TopPrompt {
	type feedbackTally struct {
		total   int
		helpful int
	}
	feedbackByPrompt := make(map[uuid.UUID]feedbackTally, len(prompts))
	for _, f := range feedback {
		t := feedbackByPrompt[f.PromptID]
		t.total++
		if f.Helpful {
			t.helpful++
		}
		feedbackByPrompt[f.PromptID] = t
	}

	type ratingTally struct {
		count int
		sum   int
	}
	ratingsByPrompt := make(map[uuid.UUID]ratingTally, len(prompts))
	for _, r := range ratings {
		t := ratingsByPrompt[r.PromptID]
		t.count++
		t.sum += r.Rating
		ratingsByPrompt[r.PromptID] = t
	}

	sorted := make([]models.Prompt, len(prompts))
	copy(sorted, prompts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UseCount > sorted[j].UseCount
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	top := make([]TopPrompt, len(sorted))
	for i, p := range sorted {
		ft := feedbackByPrompt[p.ID]
		rt := ratingsByPrompt[p.ID]
		top[i] = TopPrompt{
			ID:            p.ID,
			Title:         p.Title,
			Category:      p.Category,
			UseCount:      p.UseCount,
			SuccessRate:   successRate(ft.helpful, ft.total),
			AvgRating:     averageRating(rt.sum, rt.count),
			FeedbackCount: ft.total,
			RatingCount:   rt.count,
		}
	}
	return top
}
