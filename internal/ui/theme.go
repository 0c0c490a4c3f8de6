// Package ui renders tasks for the terminal: the cyberpunk theme, aligned
// tables, badges, and the stats panel.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/neonterm/retrotodo/task"
)

// Theme names accepted in configuration.
const (
	ThemeCyberpunk = "cyberpunk"
	ThemePlain     = "plain"
)

const (
	colorCyan    = lipgloss.Color("#00FFFF")
	colorMagenta = lipgloss.Color("#FF00FF")
	colorGreen   = lipgloss.Color("#00FF00")
	colorYellow  = lipgloss.Color("#FFFF00")
	colorRed     = lipgloss.Color("#FF0000")
	colorOrange  = lipgloss.Color("#FFA500")
	colorDim     = lipgloss.Color("#666666")
)

// Theme holds the styles used across all command output.
type Theme struct {
	// Styled is false for the plain theme and when color is disabled.
	Styled bool

	Title     lipgloss.Style
	Header    lipgloss.Style
	ID        lipgloss.Style
	Tag       lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Completed lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	priorities map[task.Priority]lipgloss.Style
}

// NewTheme returns the theme for the given name. Unknown names and
// noColor both fall back to the plain theme.
func NewTheme(name string, noColor bool) *Theme {
	if noColor || name == ThemePlain {
		return plainTheme()
	}
	return cyberpunkTheme()
}

func cyberpunkTheme() *Theme {
	return &Theme{
		Styled:    true,
		Title:     lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
		Header:    lipgloss.NewStyle().Foreground(colorMagenta).Bold(true),
		ID:        lipgloss.NewStyle().Foreground(colorCyan),
		Tag:       lipgloss.NewStyle().Foreground(colorCyan),
		Muted:     lipgloss.NewStyle().Foreground(colorDim),
		Success:   lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		Warning:   lipgloss.NewStyle().Foreground(colorYellow),
		Error:     lipgloss.NewStyle().Foreground(colorRed).Bold(true),
		Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(colorDim),
		Border:      lipgloss.DoubleBorder(),
		BorderColor: colorCyan,
		priorities: map[task.Priority]lipgloss.Style{
			task.PriorityLow:    lipgloss.NewStyle().Foreground(colorGreen),
			task.PriorityMedium: lipgloss.NewStyle().Foreground(colorYellow),
			task.PriorityHigh:   lipgloss.NewStyle().Foreground(colorOrange),
			task.PriorityUrgent: lipgloss.NewStyle().Foreground(colorRed).Bold(true),
		},
	}
}

func plainTheme() *Theme {
	plain := lipgloss.NewStyle()
	return &Theme{
		Title:     plain,
		Header:    plain,
		ID:        plain,
		Tag:       plain,
		Muted:     plain,
		Success:   plain,
		Warning:   plain,
		Error:     plain,
		Completed: plain,
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},
		priorities: map[task.Priority]lipgloss.Style{
			task.PriorityLow:    plain,
			task.PriorityMedium: plain,
			task.PriorityHigh:   plain,
			task.PriorityUrgent: plain,
		},
	}
}

// PriorityBadge renders a priority label like "URGENT" in its color.
func (t *Theme) PriorityBadge(p task.Priority) string {
	return t.priorities[p].Render(strings.ToUpper(string(p)))
}

// StatusBadge renders a status label.
func (t *Theme) StatusBadge(s task.Status) string {
	label := capitalize(string(s))
	if s == task.StatusCompleted {
		return t.Success.Render(label)
	}
	return t.Warning.Render(label)
}

// TaskTitle renders a title, struck through when the task is done.
func (t *Theme) TaskTitle(tsk task.Task) string {
	if tsk.Status == task.StatusCompleted {
		return t.Completed.Render(tsk.Title)
	}
	return tsk.Title
}

// Tags renders a tag list like "#work #home", or a muted placeholder.
func (t *Theme) Tags(tags []string) string {
	if len(tags) == 0 {
		return t.Muted.Render("no tags")
	}
	rendered := make([]string, len(tags))
	for i, tag := range tags {
		rendered[i] = t.Tag.Render("#" + tag)
	}
	return strings.Join(rendered, " ")
}

// DueDate renders a due date with an overdue warning or a countdown for
// anything due within a day.
func (t *Theme) DueDate(due *time.Time, now time.Time) string {
	if due == nil {
		return t.Muted.Render("no due date")
	}

	remaining := due.Sub(now)
	switch {
	case remaining < 0:
		return t.Error.Render("OVERDUE " + due.Format("2006-01-02 15:04"))
	case remaining < 24*time.Hour:
		return t.Warning.Render(fmt.Sprintf("%dh remaining", int(remaining.Hours())))
	default:
		return t.Success.Render(due.Format("2006-01-02 15:04"))
	}
}

// Recurrence renders a recurrence label, empty for one-time tasks.
func (t *Theme) Recurrence(p task.RecurrencePattern) string {
	if p == task.RecurrenceNone {
		return ""
	}
	return t.Header.Render("repeats " + string(p))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
