// Package task implements the core of retrotodo: the task entity and its
// validation rules, a JSON-document persistence store, and the query
// operations (search, filter, sort, recurrence, statistics).
//
// Tasks live in a single JSON file, a mapping from string-encoded integer
// IDs to task records. The Store owns all file access; the Service is the
// only writer and exposes the lifecycle operations the CLI calls:
//   - Create, Update, Complete, Reopen, Delete for the task lifecycle
//   - Get, List, Statistics for reading
//   - Search, Filter, Sort as pure functions over snapshots from List
package task

import "time"

// Task represents a single to-do item.
type Task struct {
	// ID is a unique positive integer, immutable after creation.
	ID int `json:"id"`

	// Title is the short summary of the task (1-500 chars after trimming).
	Title string `json:"title"`

	// Description provides additional context (max 5000 chars).
	Description string `json:"description,omitempty"`

	// Status is the completion state of the task.
	Status Status `json:"status"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// Tags are lowercased categorization labels, deduplicated in order.
	Tags []string `json:"tags"`

	// DueDate is the optional deadline (nil when none).
	DueDate *time.Time `json:"due_date,omitempty"`

	// Recurrence is the repetition schedule.
	Recurrence RecurrencePattern `json:"recurrence_pattern"`

	// CreatedAt is when the task was created. Never modified.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`

	// CompletedAt is when the task completed (nil while pending).
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsOverdue reports whether the task is pending with a due date in the past.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Status == StatusPending && t.DueDate != nil && t.DueDate.Before(now)
}

// IsRecurring reports whether completing the task generates a next occurrence.
func (t Task) IsRecurring() bool {
	return t.Recurrence != RecurrenceNone
}

// HasTag reports whether the task carries the given (already normalized) tag.
func (t Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}
