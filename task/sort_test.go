package task

import (
	"testing"
	"time"
)

func TestSortByPriority(t *testing.T) {
	tasks := []Task{
		{ID: 1, Priority: PriorityLow},
		{ID: 2, Priority: PriorityUrgent},
		{ID: 3, Priority: PriorityMedium},
		{ID: 4, Priority: PriorityHigh},
	}

	ascending := Sort(tasks, SortByPriority, false)
	assertTaskIDs(t, ascending, []int{2, 4, 3, 1}) // most urgent first

	descending := Sort(tasks, SortByPriority, true)
	assertTaskIDs(t, descending, []int{1, 3, 4, 2})
}

// Equal keys preserve relative input order.
func TestSortStability(t *testing.T) {
	tasks := []Task{
		{ID: 1, Priority: PriorityHigh},
		{ID: 2, Priority: PriorityLow},
		{ID: 3, Priority: PriorityHigh},
		{ID: 4, Priority: PriorityHigh},
	}

	sorted := Sort(tasks, SortByPriority, false)
	assertTaskIDs(t, sorted, []int{1, 3, 4, 2})
}

// Tasks without a due date sort after all dated tasks in both directions.
func TestSortDueDateUndatedLast(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	early := now.Add(time.Hour)
	late := now.Add(48 * time.Hour)

	tasks := []Task{
		{ID: 1},
		{ID: 2, DueDate: &late},
		{ID: 3, DueDate: &early},
		{ID: 4},
	}

	ascending := Sort(tasks, SortByDueDate, false)
	assertTaskIDs(t, ascending, []int{3, 2, 1, 4})

	descending := Sort(tasks, SortByDueDate, true)
	assertTaskIDs(t, descending, []int{2, 3, 1, 4})
}

func TestSortByCreated(t *testing.T) {
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		{ID: 1, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 2, CreatedAt: base},
		{ID: 3, CreatedAt: base.Add(time.Hour)},
	}

	sorted := Sort(tasks, SortByCreated, false)
	assertTaskIDs(t, sorted, []int{2, 3, 1})

	reversed := Sort(tasks, SortByCreated, true)
	assertTaskIDs(t, reversed, []int{1, 3, 2})
}

func TestSortByTitleCaseInsensitive(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Apple"},
		{ID: 3, Title: "cherry"},
	}

	sorted := Sort(tasks, SortByTitle, false)
	assertTaskIDs(t, sorted, []int{2, 1, 3})
}

// Sort returns a new slice; the input order is untouched.
func TestSortDoesNotMutateInput(t *testing.T) {
	tasks := []Task{
		{ID: 2, Priority: PriorityLow},
		{ID: 1, Priority: PriorityUrgent},
	}

	Sort(tasks, SortByPriority, false)

	if tasks[0].ID != 2 || tasks[1].ID != 1 {
		t.Errorf("input mutated: %v, %v", tasks[0].ID, tasks[1].ID)
	}
}
