package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/neonterm/retrotodo/task"
)

// TaskDetail renders the full single-task view. The description is passed
// separately so callers can render it through markdown first.
func TaskDetail(theme *Theme, tsk task.Task, description string, now time.Time) string {
	var b strings.Builder

	writeField := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", theme.Muted.Render(label+":"), value)
	}

	writeField("ID", theme.ID.Render(fmt.Sprintf("%d", tsk.ID)))
	writeField("Title", theme.TaskTitle(tsk))
	writeField("Priority", theme.PriorityBadge(tsk.Priority))
	writeField("Status", theme.StatusBadge(tsk.Status))
	writeField("Tags", theme.Tags(tsk.Tags))
	writeField("Due", theme.DueDate(tsk.DueDate, now))
	if label := theme.Recurrence(tsk.Recurrence); label != "" {
		writeField("Recurrence", label)
	}
	writeField("Created", theme.Muted.Render(tsk.CreatedAt.Format("2006-01-02 15:04")))
	writeField("Updated", theme.Muted.Render(tsk.UpdatedAt.Format("2006-01-02 15:04")))
	if tsk.CompletedAt != nil {
		writeField("Completed", theme.Success.Render(tsk.CompletedAt.Format("2006-01-02 15:04")))
	}

	if description != "" {
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render("Description:"))
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(description, "\n"))
		b.WriteString("\n")
	}

	return Boxed(theme, strings.TrimRight(b.String(), "\n"))
}
