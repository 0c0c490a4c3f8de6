package task

import (
	"sort"
	"strings"
)

// SortKey selects the attribute to order tasks by.
type SortKey string

const (
	// SortByPriority orders most-urgent first (descending reverses).
	SortByPriority SortKey = "priority"

	// SortByDueDate orders soonest first. Tasks without a due date always
	// sort last, regardless of direction.
	SortByDueDate SortKey = "due_date"

	// SortByCreated orders chronologically by creation time.
	SortByCreated SortKey = "created_at"

	// SortByTitle orders case-insensitively by title.
	SortByTitle SortKey = "title"
)

// ValidSortKeys returns the selectable sort keys.
func ValidSortKeys() []SortKey {
	return []SortKey{SortByPriority, SortByDueDate, SortByCreated, SortByTitle}
}

// IsValid returns true if the key is a known value.
func (k SortKey) IsValid() bool {
	for _, valid := range ValidSortKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// Sort returns a new slice ordered by the given key. The sort is stable:
// tasks comparing equal keep their relative input order.
func Sort(tasks []Task, key SortKey, descending bool) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		// Undated tasks stay last in both directions, so handle them
		// before the direction flip.
		if key == SortByDueDate {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return false
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			}
		}

		less := compareByKey(a, b, key)
		if descending {
			return compareByKey(b, a, key)
		}
		return less
	})

	return sorted
}

func compareByKey(a, b Task, key SortKey) bool {
	switch key {
	case SortByPriority:
		return a.Priority.Rank() < b.Priority.Rank()
	case SortByDueDate:
		return a.DueDate.Before(*b.DueDate)
	case SortByCreated:
		return a.CreatedAt.Before(b.CreatedAt)
	case SortByTitle:
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	default:
		return false
	}
}
