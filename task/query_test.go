package task

import (
	"testing"
	"time"
)

func queryFixture(now time.Time) []Task {
	overdue := now.Add(-2 * time.Hour)
	today := now.Add(3 * time.Hour)
	nextWeek := now.Add(6 * 24 * time.Hour)
	farFuture := now.Add(30 * 24 * time.Hour)
	done := now.Add(-time.Hour)

	return []Task{
		{ID: 1, Title: "Deploy the release", Description: "ship it", Status: StatusPending, Priority: PriorityUrgent, Tags: []string{"work"}, DueDate: &overdue},
		{ID: 2, Title: "Water plants", Status: StatusPending, Priority: PriorityLow, Tags: []string{"home"}, DueDate: &today},
		{ID: 3, Title: "Plan sprint", Description: "next release scope", Status: StatusPending, Priority: PriorityHigh, Tags: []string{"work", "planning"}, DueDate: &nextWeek},
		{ID: 4, Title: "Renew passport", Status: StatusPending, Priority: PriorityMedium, Tags: []string{"errands"}, DueDate: &farFuture},
		{ID: 5, Title: "Archive old logs", Status: StatusCompleted, Priority: PriorityHigh, Tags: []string{"work"}, CompletedAt: &done},
	}
}

func TestSearch(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := queryFixture(now)

	tests := []struct {
		name    string
		keyword string
		wantIDs []int
	}{
		{"empty keyword returns everything", "", []int{1, 2, 3, 4, 5}},
		{"title match", "plants", []int{2}},
		{"case-insensitive", "DEPLOY", []int{1}},
		{"description match", "release scope", []int{3}},
		{"title and description", "release", []int{1, 3}},
		{"no matches", "zzz_no_such_keyword", []int{}},
		{"special characters are literal", "plants (", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tasks, tt.keyword)
			assertTaskIDs(t, got, tt.wantIDs)
		})
	}
}

func TestFilterSingleCriteria(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := queryFixture(now)
	pending := StatusPending

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []int
	}{
		{"no criteria keeps everything", Filter{}, []int{1, 2, 3, 4, 5}},
		{"single priority", Filter{Priorities: []Priority{PriorityHigh}}, []int{3, 5}},
		{"multiple priorities", Filter{Priorities: []Priority{PriorityUrgent, PriorityLow}}, []int{1, 2}},
		{"status", Filter{Status: &pending}, []int{1, 2, 3, 4}},
		{"tag any-of", Filter{Tags: []string{"home", "errands"}}, []int{2, 4}},
		{"tag all-of", Filter{Tags: []string{"work", "planning"}, TagsAll: true}, []int{3}},
		{"tags normalized before matching", Filter{Tags: []string{" WORK "}}, []int{1, 3, 5}},
		{"due overdue", Filter{Due: DueOverdue}, []int{1}},
		{"due today includes earlier today", Filter{Due: DueToday}, []int{1, 2}},
		{"due this week", Filter{Due: DueThisWeek}, []int{1, 2, 3}},
		{"no due date", Filter{Due: DueNone}, []int{5}},
		{"no matches is empty not error", Filter{Tags: []string{"nope"}}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(tasks, now)
			assertTaskIDs(t, got, tt.wantIDs)
		})
	}
}

// Combined criteria AND together: the result is a subset of each criterion
// applied alone.
func TestFilterANDSemantics(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := queryFixture(now)
	pending := StatusPending

	combined := Filter{Priorities: []Priority{PriorityHigh}, Status: &pending}
	got := combined.Apply(tasks, now)
	assertTaskIDs(t, got, []int{3})

	byPriority := Filter{Priorities: []Priority{PriorityHigh}}.Apply(tasks, now)
	byStatus := Filter{Status: &pending}.Apply(tasks, now)
	for _, task := range got {
		if !containsID(byPriority, task.ID) || !containsID(byStatus, task.ID) {
			t.Errorf("task %d in combined result missing from a single-criterion result", task.ID)
		}
	}
}

func assertTaskIDs(t *testing.T, got []Task, wantIDs []int) {
	t.Helper()

	gotIDs := make([]int, len(got))
	for i, task := range got {
		gotIDs[i] = task.ID
	}
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("got IDs %v, want %v", gotIDs, wantIDs)
	}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("got IDs %v, want %v", gotIDs, wantIDs)
		}
	}
}

func containsID(tasks []Task, id int) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}
