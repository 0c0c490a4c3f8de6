package task

import "time"

// Status represents the completion state of a task.
type Status string

const (
	// StatusPending indicates the task has not been completed yet.
	StatusPending Status = "pending"

	// StatusCompleted indicates the task is done.
	StatusCompleted Status = "completed"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow is for tasks with no urgency.
	PriorityLow Priority = "low"

	// PriorityMedium is the default priority.
	PriorityMedium Priority = "medium"

	// PriorityHigh is for important tasks.
	PriorityHigh Priority = "high"

	// PriorityUrgent is for critical tasks.
	PriorityUrgent Priority = "urgent"
)

// ValidPriorities returns all valid priority values, least urgent first.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority. Urgent ranks first (0).
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// RecurrencePattern represents how often a task repeats.
type RecurrencePattern string

const (
	// RecurrenceNone marks a one-time task.
	RecurrenceNone RecurrencePattern = "none"

	// RecurrenceDaily repeats every day.
	RecurrenceDaily RecurrencePattern = "daily"

	// RecurrenceWeekly repeats every 7 days.
	RecurrenceWeekly RecurrencePattern = "weekly"

	// RecurrenceMonthly repeats every 30 days. This is a deliberate
	// approximation, not calendar-month rollover.
	RecurrenceMonthly RecurrencePattern = "monthly"
)

// ValidRecurrencePatterns returns all valid recurrence values.
func ValidRecurrencePatterns() []RecurrencePattern {
	return []RecurrencePattern{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly}
}

// IsValid returns true if the pattern is a known valid value.
func (r RecurrencePattern) IsValid() bool {
	for _, valid := range ValidRecurrencePatterns() {
		if r == valid {
			return true
		}
	}
	return false
}

// Interval returns the duration between occurrences. None returns zero.
func (r RecurrencePattern) Interval() time.Duration {
	switch r {
	case RecurrenceDaily:
		return 24 * time.Hour
	case RecurrenceWeekly:
		return 7 * 24 * time.Hour
	case RecurrenceMonthly:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// MaxTitleLength is the maximum allowed length for a task title, in runes.
const MaxTitleLength = 500

// MaxDescriptionLength is the maximum allowed description length, in runes.
const MaxDescriptionLength = 5000
