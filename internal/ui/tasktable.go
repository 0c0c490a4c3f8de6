package ui

import (
	"strconv"
	"time"

	"github.com/neonterm/retrotodo/task"
)

var taskTableHeaders = []string{"ID", "TITLE", "PRIORITY", "STATUS", "TAGS", "DUE"}

// TaskTable renders a list of tasks as an aligned table.
func TaskTable(theme *Theme, tasks []task.Task, now time.Time) string {
	builder := NewTableBuilder(theme, taskTableHeaders, len(tasks))
	for _, tsk := range tasks {
		builder.AddRow([]string{
			theme.ID.Render(strconv.Itoa(tsk.ID)),
			TruncateTableCell(theme.TaskTitle(tsk)),
			theme.PriorityBadge(tsk.Priority),
			theme.StatusBadge(tsk.Status),
			TruncateTableCell(theme.Tags(tsk.Tags)),
			theme.DueDate(tsk.DueDate, now),
		})
	}
	return builder.String()
}
