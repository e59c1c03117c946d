// Package diary defines the dated journal entry model.
package diary

import "tableflip.dev/nikki/pkg/dates"

// Entry is one journal note attached to a calendar day and a category.
type Entry struct {
	ID        string    `json:"id"`
	Date      dates.Key `json:"date"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	CreatedAt int64     `json:"createdAt"`
	UpdatedAt int64     `json:"updatedAt,omitempty"`
}

// DefaultCategories returns the category seed for a fresh store:
// daily life, work, exercise, meals.
func DefaultCategories() []string {
	return []string{"日常", "仕事", "運動", "食事"}
}
