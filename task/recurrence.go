package task

import "time"

// NextOccurrence synthesizes the next occurrence of a completed recurring
// task. It returns false for non-recurring tasks.
//
// The next due date is the completed task's due date (or now, when it had
// none) plus the pattern's interval. Title, description, priority, tags,
// and the recurrence pattern carry over unchanged; each occurrence is an
// independent record, so the result has a zero ID and zero timestamps for
// the service to assign before persisting.
func NextOccurrence(completed Task, now time.Time) (Task, bool) {
	if !completed.IsRecurring() {
		return Task{}, false
	}

	base := now
	if completed.DueDate != nil {
		base = *completed.DueDate
	}
	nextDue := base.Add(completed.Recurrence.Interval())

	next := Task{
		Title:       completed.Title,
		Description: completed.Description,
		Status:      StatusPending,
		Priority:    completed.Priority,
		Tags:        append([]string(nil), completed.Tags...),
		DueDate:     &nextDue,
		Recurrence:  completed.Recurrence,
	}
	return next, true
}
