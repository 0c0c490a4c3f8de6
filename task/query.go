package task

import (
	"strings"
	"time"
)

// Search returns tasks whose title or description contains the keyword,
// case-insensitively. The keyword is literal text, never a pattern. An empty
// keyword matches everything; no matches yields an empty result, not an
// error.
func Search(tasks []Task, keyword string) []Task {
	keyword = strings.ToLower(keyword)
	matched := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if keyword == "" ||
			strings.Contains(strings.ToLower(t.Title), keyword) ||
			strings.Contains(strings.ToLower(t.Description), keyword) {
			matched = append(matched, t)
		}
	}
	return matched
}

// DueBucket selects tasks by where their due date falls relative to now.
type DueBucket string

const (
	// DueAny applies no due-date predicate.
	DueAny DueBucket = ""

	// DueOverdue matches pending tasks whose due date has passed.
	DueOverdue DueBucket = "overdue"

	// DueToday matches due dates within the current calendar day.
	DueToday DueBucket = "today"

	// DueThisWeek matches due dates within the next 7 days.
	DueThisWeek DueBucket = "week"

	// DueNone matches tasks without a due date.
	DueNone DueBucket = "none"
)

// ValidDueBuckets returns the selectable due buckets.
func ValidDueBuckets() []DueBucket {
	return []DueBucket{DueOverdue, DueToday, DueThisWeek, DueNone}
}

// IsValid returns true if the bucket is a known value.
func (b DueBucket) IsValid() bool {
	if b == DueAny {
		return true
	}
	for _, valid := range ValidDueBuckets() {
		if b == valid {
			return true
		}
	}
	return false
}

// Filter configures which tasks to keep. Every field is independently
// optional; the set predicates combine with logical AND.
type Filter struct {
	// Priorities keeps tasks matching any of the listed priorities.
	Priorities []Priority

	// Status keeps tasks with this exact status.
	Status *Status

	// Tags keeps tasks carrying at least one of the listed tags, or every
	// one of them when TagsAll is set. Tags are normalized before matching.
	Tags    []string
	TagsAll bool

	// Due keeps tasks in the given due-date bucket.
	Due DueBucket
}

// Apply returns the tasks satisfying every set predicate. No matches is a
// defined, non-error outcome.
func (f Filter) Apply(tasks []Task, now time.Time) []Task {
	tags := NormalizeTags(f.Tags)

	matched := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if len(f.Priorities) > 0 && !matchesPriority(t, f.Priorities) {
			continue
		}
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if len(tags) > 0 && !matchesTags(t, tags, f.TagsAll) {
			continue
		}
		if !matchesDueBucket(t, f.Due, now) {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

func matchesPriority(t Task, priorities []Priority) bool {
	for _, p := range priorities {
		if t.Priority == p {
			return true
		}
	}
	return false
}

func matchesTags(t Task, tags []string, all bool) bool {
	for _, tag := range tags {
		if t.HasTag(tag) {
			if !all {
				return true
			}
		} else if all {
			return false
		}
	}
	return all
}

func matchesDueBucket(t Task, bucket DueBucket, now time.Time) bool {
	switch bucket {
	case DueAny:
		return true
	case DueOverdue:
		return t.IsOverdue(now)
	case DueToday:
		return t.DueDate != nil && dueToday(*t.DueDate, now)
	case DueThisWeek:
		return t.DueDate != nil && dueThisWeek(*t.DueDate, now)
	case DueNone:
		return t.DueDate == nil
	default:
		return false
	}
}

// dueToday reports whether due falls within [start of day, start of next day).
func dueToday(due, now time.Time) bool {
	start := startOfDay(now)
	end := start.AddDate(0, 0, 1)
	return !due.Before(start) && due.Before(end)
}

// dueThisWeek reports whether due falls within [start of day, start of day + 7d].
func dueThisWeek(due, now time.Time) bool {
	start := startOfDay(now)
	end := start.AddDate(0, 0, 7)
	return !due.Before(start) && !due.After(end)
}

func startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
