package task

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	// ErrEmptyTitle is returned when a title is empty or whitespace-only.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrDescriptionTooLong is returned when a description exceeds MaxDescriptionLength.
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")

	// ErrDueDateInPast is returned when a write sets a due date before the current time.
	ErrDueDateInPast = errors.New("due date cannot be in the past")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidRecurrence is returned when an invalid recurrence pattern is provided.
	ErrInvalidRecurrence = errors.New("invalid recurrence pattern")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAlreadyCompleted is returned when completing a task that is already completed.
	ErrAlreadyCompleted = errors.New("task is already completed")

	// ErrNotCompleted is returned when reopening a task that is still pending.
	ErrNotCompleted = errors.New("task is not completed")

	// ErrCompletedAtMismatch is returned when completed_at disagrees with status.
	ErrCompletedAtMismatch = errors.New("completed_at must be set exactly when status is completed")
)

// ValidationError reports which field violated an entity invariant. It wraps
// one of the sentinel errors above so callers can match with errors.Is.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalidField(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// ValidateTitle trims the title and checks its length.
// Returns the trimmed title on success.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", invalidField("title", ErrEmptyTitle)
	}
	if count := utf8.RuneCountInString(trimmed); count > MaxTitleLength {
		return "", invalidField("title", fmt.Errorf("%w: %d > %d", ErrTitleTooLong, count, MaxTitleLength))
	}
	return trimmed, nil
}

// ValidateDescription checks the description length.
func ValidateDescription(description string) error {
	if count := utf8.RuneCountInString(description); count > MaxDescriptionLength {
		return invalidField("description", fmt.Errorf("%w: %d > %d", ErrDescriptionTooLong, count, MaxDescriptionLength))
	}
	return nil
}

// ValidateDueDate rejects due dates strictly before now. The check applies
// only at the moment of the write that sets the date; a stored due date
// drifting into the past is expected, not a validation failure.
func ValidateDueDate(due *time.Time, now time.Time) error {
	if due != nil && due.Before(now) {
		return invalidField("due_date", ErrDueDateInPast)
	}
	return nil
}

// NormalizeTags lowercases and trims tags, drops empties, and removes
// duplicates preserving first occurrence. Normalizing an already-normalized
// list returns it unchanged.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}

// ValidateTask checks entity invariants on an assembled task. It does not
// re-check the due date against the clock; that belongs to the write that
// sets the date.
func ValidateTask(t *Task) error {
	if _, err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if err := ValidateDescription(t.Description); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return invalidField("status", fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status))
	}
	if !t.Priority.IsValid() {
		return invalidField("priority", fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority))
	}
	if !t.Recurrence.IsValid() {
		return invalidField("recurrence_pattern", fmt.Errorf("%w: %q", ErrInvalidRecurrence, t.Recurrence))
	}

	// completed_at is non-nil exactly when status is completed.
	if (t.CompletedAt != nil) != (t.Status == StatusCompleted) {
		return invalidField("completed_at", ErrCompletedAtMismatch)
	}

	return nil
}
