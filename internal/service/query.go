package service

import (
	"sort"
	"strings"

	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
)

// SortColumn identifies a sortable prompt field
type SortColumn string

const (
	SortByTitle     SortColumn = "title"
	SortByCategory  SortColumn = "category"
	SortByUseCount  SortColumn = "use_count"
	SortByCreatedAt SortColumn = "created_at"
)

// IsValid checks if the SortColumn is valid
func (c SortColumn) IsValid() bool {
	switch c {
	case SortByTitle, SortByCategory, SortByUseCount, SortByCreatedAt:
		return true
	}
	return false
}

// SortDirection is an ascending or descending sort order
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValid checks if the SortDirection is valid
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// FolderFilterUnsorted selects prompts whose save has no folder, or which
// the user has not saved at all.
const FolderFilterUnsorted = "unsorted"

// FolderMapping is the slice of a saved-prompt row the filter engine needs:
// which prompt the user saved and which folder, if any, it sits in.
type FolderMapping struct {
	SavedPromptID uuid.UUID  `json:"saved_prompt_id"`
	PromptID      uuid.UUID  `json:"prompt_id"`
	FolderID      *uuid.UUID `json:"folder_id,omitempty"`
}

// PromptQuery captures the search/filter/sort criteria for a listing.
// Zero values mean "no filter": empty Search matches everything, empty
// Category and Folder pass all prompts through.
type PromptQuery struct {
	Search        string
	Category      string
	Folder        string // "", FolderFilterUnsorted, or a folder UUID
	SortColumn    SortColumn
	SortDirection SortDirection
}

// FilterPrompts applies search, category and folder criteria as a logical
// AND, returning a new slice. The input is never modified.
func FilterPrompts(prompts []models.Prompt, query PromptQuery, mappings []FolderMapping) []models.Prompt {
	byPrompt := make(map[uuid.UUID]FolderMapping, len(mappings))
	for _, m := range mappings {
		byPrompt[m.PromptID] = m
	}

	result := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if !matchesSearch(p, query.Search) {
			continue
		}
		if query.Category != "" && p.Category != query.Category {
			continue
		}
		if !matchesFolder(p, query.Folder, byPrompt) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// matchesSearch does a case-insensitive substring match against title,
// description and every tag. An empty query matches everything.
func matchesSearch(p models.Prompt, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// matchesFolder implements the three-way folder filter: no filter, unsorted
// (no mapping or nil folder), or a concrete folder id. Prompts without a
// mapping never match a concrete folder.
func matchesFolder(p models.Prompt, folder string, byPrompt map[uuid.UUID]FolderMapping) bool {
	if folder == "" {
		return true
	}
	mapping, saved := byPrompt[p.ID]
	if folder == FolderFilterUnsorted {
		return !saved || mapping.FolderID == nil
	}
	if !saved || mapping.FolderID == nil {
		return false
	}
	return mapping.FolderID.String() == folder
}

// SortPrompts returns a sorted copy of the prompts. The sort is stable:
// equal elements keep their input order. Unknown columns leave the order
// untouched.
func SortPrompts(prompts []models.Prompt, column SortColumn, direction SortDirection) []models.Prompt {
	sorted := make([]models.Prompt, len(prompts))
	copy(sorted, prompts)

	dir := 1
	if direction == SortDesc {
		dir = -1
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch column {
		case SortByTitle:
			return dir*compareFold(a.Title, b.Title) < 0
		case SortByCategory:
			return dir*compareFold(a.Category, b.Category) < 0
		case SortByUseCount:
			return dir*(a.UseCount-b.UseCount) < 0
		case SortByCreatedAt:
			if a.CreatedAt.Equal(b.CreatedAt) {
				return false
			}
			if dir > 0 {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		default:
			return false
		}
	})
	return sorted
}

// compareFold orders strings case-insensitively, falling back to a
// case-sensitive comparison so distinct strings never compare equal.
func compareFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// KanbanColumn is one category column of the kanban view
type KanbanColumn struct {
	Category string          `json:"category"`
	Prompts  []models.Prompt `json:"prompts"`
}

// GroupByCategory regroups an already filtered and sorted prompt list into
// kanban columns. Categories with no matching prompts are omitted; the
// caller-supplied category order is preserved for the rest. Category
// comparison is case-insensitive, matching how the columns are labelled.
func GroupByCategory(prompts []models.Prompt, categories []string) []KanbanColumn {
	columns := make([]KanbanColumn, 0, len(categories))
	for _, category := range categories {
		var matched []models.Prompt
		for _, p := range prompts {
			if strings.EqualFold(p.Category, category) {
				matched = append(matched, p)
			}
		}
		if len(matched) == 0 {
			continue
		}
		columns = append(columns, KanbanColumn{Category: category, Prompts: matched})
	}
	return columns
}
