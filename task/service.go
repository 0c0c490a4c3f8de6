package task

import (
	"fmt"
	"time"
)

// Service orchestrates the task lifecycle against an injected store.
// It is the only writer; query helpers operate on snapshots from List.
type Service struct {
	store *Store
	now   func() time.Time
}

// NewService returns a service using the wall clock.
func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// NewServiceWithClock returns a service with an injected clock.
func NewServiceWithClock(store *Store, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

// CreateOptions configures a new task.
type CreateOptions struct {
	// Title is the task title (required).
	Title string

	// Description provides additional context.
	Description string

	// Status defaults to StatusPending when empty.
	Status Status

	// Priority defaults to PriorityMedium when empty.
	Priority Priority

	// Tags are normalized (lowercased, trimmed, deduplicated) on create.
	Tags []string

	// DueDate must not be before the current time.
	DueDate *time.Time

	// Recurrence defaults to RecurrenceNone when empty.
	Recurrence RecurrencePattern
}

// Create validates the fields, allocates the next ID, and persists a new task.
func (s *Service) Create(opts CreateOptions) (*Task, error) {
	title, err := ValidateTitle(opts.Title)
	if err != nil {
		return nil, err
	}
	if err := ValidateDescription(opts.Description); err != nil {
		return nil, err
	}

	if opts.Status == "" {
		opts.Status = StatusPending
	}
	if !opts.Status.IsValid() {
		return nil, invalidField("status", fmt.Errorf("%w: %q", ErrInvalidStatus, opts.Status))
	}
	if opts.Priority == "" {
		opts.Priority = PriorityMedium
	}
	if !opts.Priority.IsValid() {
		return nil, invalidField("priority", fmt.Errorf("%w: %q", ErrInvalidPriority, opts.Priority))
	}
	if opts.Recurrence == "" {
		opts.Recurrence = RecurrenceNone
	}
	if !opts.Recurrence.IsValid() {
		return nil, invalidField("recurrence_pattern", fmt.Errorf("%w: %q", ErrInvalidRecurrence, opts.Recurrence))
	}

	now := s.now()
	if err := ValidateDueDate(opts.DueDate, now); err != nil {
		return nil, err
	}

	t := Task{
		ID:          s.store.NextID(),
		Title:       title,
		Description: opts.Description,
		Status:      opts.Status,
		Priority:    opts.Priority,
		Tags:        NormalizeTags(opts.Tags),
		DueDate:     opts.DueDate,
		Recurrence:  opts.Recurrence,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Status == StatusCompleted {
		t.CompletedAt = &now
	}

	if err := s.store.Insert(t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Get returns the task with the given ID.
func (s *Service) Get(id int) (*Task, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
	}
	return &t, nil
}

// List returns a snapshot of all tasks in ascending ID order.
func (s *Service) List() []Task {
	return s.store.GetAll()
}

// UpdateOptions configures fields to update on a task. Nil pointers mean
// "don't update this field". Status and completed_at are deliberately
// absent: completion is a distinguished transition, so callers must go
// through Complete and Reopen to toggle it.
type UpdateOptions struct {
	Title       *string
	Description *string
	Priority    *Priority
	Recurrence  *RecurrencePattern

	// Tags replaces the tag list when non-nil. An empty non-nil slice
	// clears all tags.
	Tags []string

	// DueDate sets a new deadline when non-nil.
	DueDate *time.Time

	// ClearDueDate removes the deadline. Takes precedence over DueDate.
	ClearDueDate bool
}

// Update merges the options into the stored task, re-validates, refreshes
// updated_at, and persists.
func (s *Service) Update(id int, opts UpdateOptions) (*Task, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
	}

	now := s.now()

	if opts.Title != nil {
		title, err := ValidateTitle(*opts.Title)
		if err != nil {
			return nil, err
		}
		t.Title = title
	}
	if opts.Description != nil {
		if err := ValidateDescription(*opts.Description); err != nil {
			return nil, err
		}
		t.Description = *opts.Description
	}
	if opts.Priority != nil {
		if !opts.Priority.IsValid() {
			return nil, invalidField("priority", fmt.Errorf("%w: %q", ErrInvalidPriority, *opts.Priority))
		}
		t.Priority = *opts.Priority
	}
	if opts.Recurrence != nil {
		if !opts.Recurrence.IsValid() {
			return nil, invalidField("recurrence_pattern", fmt.Errorf("%w: %q", ErrInvalidRecurrence, *opts.Recurrence))
		}
		t.Recurrence = *opts.Recurrence
	}
	if opts.Tags != nil {
		t.Tags = NormalizeTags(opts.Tags)
	}
	if opts.ClearDueDate {
		t.DueDate = nil
	} else if opts.DueDate != nil {
		if err := ValidateDueDate(opts.DueDate, now); err != nil {
			return nil, err
		}
		t.DueDate = opts.DueDate
	}

	t.UpdatedAt = now

	if err := ValidateTask(&t); err != nil {
		return nil, err
	}

	if _, err := s.store.Update(t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Complete marks a pending task as completed. For a recurring task it also
// synthesizes and persists the next occurrence as a new, independent task.
// Returns the completed task and the next occurrence (nil when the task
// does not recur). Completing an already-completed task is rejected rather
// than silently generating a duplicate occurrence.
func (s *Service) Complete(id int) (*Task, *Task, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return nil, nil, fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
	}
	if t.Status == StatusCompleted {
		return nil, nil, fmt.Errorf("task %d: %w", id, ErrAlreadyCompleted)
	}

	now := s.now()
	t.Status = StatusCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now

	if _, err := s.store.Update(t); err != nil {
		return nil, nil, err
	}

	next, ok := NextOccurrence(t, now)
	if !ok {
		return &t, nil, nil
	}

	// The generated occurrence keeps the schedule's cadence even when the
	// computed due date has already passed, so persistence skips the
	// past-due check that applies to caller-supplied writes.
	next.ID = s.store.NextID()
	next.CreatedAt = now
	next.UpdatedAt = now
	if err := ValidateTask(&next); err != nil {
		return nil, nil, err
	}
	if err := s.store.Insert(next); err != nil {
		return nil, nil, err
	}

	return &t, &next, nil
}

// Reopen returns a completed task to pending and clears completed_at.
func (s *Service) Reopen(id int) (*Task, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
	}
	if t.Status != StatusCompleted {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotCompleted)
	}

	now := s.now()
	t.Status = StatusPending
	t.CompletedAt = nil
	t.UpdatedAt = now

	if _, err := s.store.Update(t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a task. It reports whether the task existed. There is no
// soft delete or undo.
func (s *Service) Delete(id int) (bool, error) {
	return s.store.Delete(id)
}

// Statistics aggregates counts over the full collection.
type Statistics struct {
	Total       int
	Completed   int
	Pending     int
	Overdue     int
	DueToday    int
	DueThisWeek int

	// ByPriority counts every task, completed included, and always carries
	// all four priority keys.
	ByPriority map[Priority]int

	// ByTag counts tag occurrences across all tasks.
	ByTag map[string]int
}

// Statistics computes aggregate counts over all tasks.
func (s *Service) Statistics() *Statistics {
	tasks := s.store.GetAll()
	now := s.now()

	stats := &Statistics{
		Total:      len(tasks),
		ByPriority: make(map[Priority]int, len(ValidPriorities())),
		ByTag:      make(map[string]int),
	}
	for _, p := range ValidPriorities() {
		stats.ByPriority[p] = 0
	}

	for _, t := range tasks {
		switch t.Status {
		case StatusCompleted:
			stats.Completed++
		case StatusPending:
			stats.Pending++
		}
		stats.ByPriority[t.Priority]++
		for _, tag := range t.Tags {
			stats.ByTag[tag]++
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
		if t.DueDate != nil {
			if dueToday(*t.DueDate, now) {
				stats.DueToday++
			}
			if dueThisWeek(*t.DueDate, now) {
				stats.DueThisWeek++
			}
		}
	}

	return stats
}
