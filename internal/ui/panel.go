package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/neonterm/retrotodo/task"
)

const panelContentWidth = 46

// Panel wraps content in a themed border with a title. The content is
// word-wrapped; use Boxed for preformatted content.
func Panel(theme *Theme, title, content string) string {
	wrapped := wordwrap.String(content, panelContentWidth)
	return Boxed(theme, theme.Title.Render(title)+"\n\n"+wrapped)
}

// Boxed draws a themed border around content as-is.
func Boxed(theme *Theme, content string) string {
	box := lipgloss.NewStyle().
		Border(theme.Border).
		BorderForeground(theme.BorderColor).
		Padding(1, 2)
	return box.Render(content)
}

// StatsPanel renders the statistics summary.
func StatsPanel(theme *Theme, stats task.Statistics) string {
	var b strings.Builder

	writeLine := func(label string, value string) {
		fmt.Fprintf(&b, "%-14s %s\n", label, value)
	}

	writeLine("Total", strconv.Itoa(stats.Total))
	writeLine("Completed", theme.Success.Render(strconv.Itoa(stats.Completed)))
	writeLine("Pending", theme.Warning.Render(strconv.Itoa(stats.Pending)))
	writeLine("Overdue", theme.Error.Render(strconv.Itoa(stats.Overdue)))
	writeLine("Due today", strconv.Itoa(stats.DueToday))
	writeLine("Due this week", strconv.Itoa(stats.DueThisWeek))

	b.WriteString("\nBy priority\n")
	for _, p := range task.ValidPriorities() {
		writeLine("  "+string(p), theme.PriorityBadge(p)+" "+strconv.Itoa(stats.ByPriority[p]))
	}

	if len(stats.ByTag) > 0 {
		b.WriteString("\nBy tag\n")
		for _, tag := range sortedTags(stats.ByTag) {
			writeLine("  #"+tag, strconv.Itoa(stats.ByTag[tag]))
		}
	}

	return Panel(theme, "TASK STATISTICS", strings.TrimRight(b.String(), "\n"))
}

func sortedTags(byTag map[string]int) []string {
	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
