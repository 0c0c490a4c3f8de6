package task

import (
	"testing"
	"time"
)

func TestStatusIsValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusCompleted, true},
		{Status("archived"), false},
		{Status(""), false},
		{Status("PENDING"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestPriorityIsValid(t *testing.T) {
	for _, p := range ValidPriorities() {
		if !p.IsValid() {
			t.Errorf("Priority(%q).IsValid() = false, want true", p)
		}
	}
	for _, p := range []Priority{"", "critical", "URGENT"} {
		if p.IsValid() {
			t.Errorf("Priority(%q).IsValid() = true, want false", p)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	// Urgent ranks before high before medium before low.
	order := []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("Rank(%q) = %d should be less than Rank(%q) = %d",
				order[i-1], order[i-1].Rank(), order[i], order[i].Rank())
		}
	}
}

func TestRecurrenceInterval(t *testing.T) {
	tests := []struct {
		pattern RecurrencePattern
		want    time.Duration
	}{
		{RecurrenceNone, 0},
		{RecurrenceDaily, 24 * time.Hour},
		{RecurrenceWeekly, 7 * 24 * time.Hour},
		{RecurrenceMonthly, 30 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			if got := tt.pattern.Interval(); got != tt.want {
				t.Errorf("Interval(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"pending past due", Task{Status: StatusPending, DueDate: &past}, true},
		{"pending future due", Task{Status: StatusPending, DueDate: &future}, false},
		{"pending no due", Task{Status: StatusPending}, false},
		{"completed past due", Task{Status: StatusCompleted, DueDate: &past, CompletedAt: &now}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}
