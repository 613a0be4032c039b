package service_test

import (
	"testing"
	"time"

	"promptvault-backend/internal/database/models"
	"promptvault-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func makePrompt(title, description, category string, tags []string, useCount int, createdAt time.Time) models.Prompt {
	return models.Prompt{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: createdAt,
		},
		Title:       title,
		Description: description,
		Category:    category,
		Tags:        tags,
		UseCount:    useCount,
	}
}

func TestFilterPrompts_Search(t *testing.T) {
	base := time.Now()
	prompts := []models.Prompt{
		makePrompt("Sprint Planning Assistant", "Plan your sprints", "Agile", []string{"planning"}, 5, base),
		makePrompt("Risk Register", "Track project risks", "Risk", []string{"risk"}, 3, base),
		makePrompt("Stakeholder Update", "Weekly status email", "Communication", []string{"roadmap planning"}, 8, base),
	}

	t.Run("matches title case-insensitively", func(t *testing.T) {
		result := service.FilterPrompts(prompts, service.PromptQuery{Search: "PLAN"}, nil)
		assert.Len(t, result, 2)
		assert.Equal(t, "Sprint Planning Assistant", result[0].Title)
		assert.Equal(t, "Stakeholder Update", result[1].Title)
	})

	t.Run("matches description", func(t *testing.T) {
		result := service.FilterPrompts(prompts, service.PromptQuery{Search: "status email"}, nil)
		assert.Len(t, result, 1)
		assert.Equal(t, "Stakeholder Update", result[0].Title)
	})

	t.Run("matches tags", func(t *testing.T) {
		result := service.FilterPrompts(prompts, service.PromptQuery{Search: "roadmap"}, nil)
		assert.Len(t, result, 1)
	})

	t.Run("empty search matches everything", func(t *testing.T) {
		result := service.FilterPrompts(prompts, service.PromptQuery{}, nil)
		assert.Len(t, result, 3)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		result := service.FilterPrompts(prompts, service.PromptQuery{Search: "budget"}, nil)
		assert.Empty(t, result)
	})
}

func TestFilterPrompts_Category(t *testing.T) {
	base := time.Now()
	prompts := []models.Prompt{
		makePrompt("A", "a", "Agile", nil, 1, base),
		makePrompt("B", "b", "Risk", nil, 2, base),
	}

	result := service.FilterPrompts(prompts, service.PromptQuery{Category: "Risk"}, nil)
	assert.Len(t, result, 1)
	assert.Equal(t, "B", result[0].Title)

	// exact match, not case-insensitive
	result = service.FilterPrompts(prompts, service.PromptQuery{Category: "risk"}, nil)
	assert.Empty(t, result)
}

func TestFilterPrompts_FolderTriState(t *testing.T) {
	base := time.Now()
	inFolder := makePrompt("In folder", "d", "Agile", nil, 1, base)
	unsortedSave := makePrompt("Saved without folder", "d", "Agile", nil, 1, base)
	notSaved := makePrompt("Never saved", "d", "Agile", nil, 1, base)
	prompts := []models.Prompt{inFolder, unsortedSave, notSaved}

	folderID := uuid.New()
	mappings := []service.FolderMapping{
		{SavedPromptID: uuid.New(), PromptID: inFolder.ID, FolderID: &folderID},
		{SavedPromptID: uuid.New(), PromptID: unsortedSave.ID, FolderID: nil},
	}

	t.Run("no filter passes all", func(t *testing.T) {
		result := service.FilterPrompts(prompts, service.PromptQuery{}, mappings)
		assert.Len(t, result, 3)
	})

	t.Run("unsorted selects nil-folder saves and unsaved prompts", func(t *testing.T) {
		result := service.FilterPrompts(prompts, service.PromptQuery{Folder: service.FolderFilterUnsorted}, mappings)
		assert.Len(t, result, 2)
		assert.Equal(t, "Saved without folder", result[0].Title)
		assert.Equal(t, "Never saved", result[1].Title)
	})

	t.Run("concrete folder selects only its saves", func(t *testing.T) {
		result := service.FilterPrompts(prompts, service.PromptQuery{Folder: folderID.String()}, mappings)
		assert.Len(t, result, 1)
		assert.Equal(t, "In folder", result[0].Title)
	})

	t.Run("partition is complete", func(t *testing.T) {
		// unsorted plus every concrete folder covers the whole set
		unsorted := service.FilterPrompts(prompts, service.PromptQuery{Folder: service.FolderFilterUnsorted}, mappings)
		sorted := service.FilterPrompts(prompts, service.PromptQuery{Folder: folderID.String()}, mappings)
		assert.Equal(t, len(prompts), len(unsorted)+len(sorted))
	})
}

func TestSortPrompts(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	prompts := []models.Prompt{
		makePrompt("banana", "d", "B", nil, 3, base.Add(2*time.Hour)),
		makePrompt("Apple", "d", "A", nil, 10, base),
		makePrompt("cherry", "d", "C", nil, 1, base.Add(time.Hour)),
	}

	t.Run("title ascending ignores case", func(t *testing.T) {
		result := service.SortPrompts(prompts, service.SortByTitle, service.SortAsc)
		assert.Equal(t, "Apple", result[0].Title)
		assert.Equal(t, "banana", result[1].Title)
		assert.Equal(t, "cherry", result[2].Title)
	})

	t.Run("descending reverses ascending", func(t *testing.T) {
		asc := service.SortPrompts(prompts, service.SortByUseCount, service.SortAsc)
		desc := service.SortPrompts(prompts, service.SortByUseCount, service.SortDesc)
		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	})

	t.Run("use count numeric", func(t *testing.T) {
		result := service.SortPrompts(prompts, service.SortByUseCount, service.SortDesc)
		assert.Equal(t, 10, result[0].UseCount)
		assert.Equal(t, 3, result[1].UseCount)
		assert.Equal(t, 1, result[2].UseCount)
	})

	t.Run("created at timestamp", func(t *testing.T) {
		result := service.SortPrompts(prompts, service.SortByCreatedAt, service.SortDesc)
		assert.Equal(t, "banana", result[0].Title)
		assert.Equal(t, "Apple", result[2].Title)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		first := prompts[0].Title
		service.SortPrompts(prompts, service.SortByTitle, service.SortAsc)
		assert.Equal(t, first, prompts[0].Title)
	})
}

func TestGroupByCategory(t *testing.T) {
	base := time.Now()
	prompts := []models.Prompt{
		makePrompt("A1", "d", "Agile", nil, 1, base),
		makePrompt("R1", "d", "risk", nil, 2, base),
		makePrompt("A2", "d", "agile", nil, 3, base),
	}

	t.Run("groups case-insensitively and preserves caller order", func(t *testing.T) {
		columns := service.GroupByCategory(prompts, []string{"Risk", "Agile", "Communication"})
		assert.Len(t, columns, 2)
		assert.Equal(t, "Risk", columns[0].Category)
		assert.Len(t, columns[0].Prompts, 1)
		assert.Equal(t, "Agile", columns[1].Category)
		assert.Len(t, columns[1].Prompts, 2)
	})

	t.Run("empty categories drop out", func(t *testing.T) {
		columns := service.GroupByCategory(prompts, []string{"Communication"})
		assert.Empty(t, columns)
	})

	t.Run("column order follows caller, not data", func(t *testing.T) {
		columns := service.GroupByCategory(prompts, []string{"Agile", "Risk"})
		assert.Equal(t, "Agile", columns[0].Category)
		assert.Equal(t, "Risk", columns[1].Category)
	})
}
