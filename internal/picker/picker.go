// Package picker provides an interactive task selector for commands that
// were invoked without a task ID.
package picker

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/neonterm/retrotodo/internal/ui"
	"github.com/neonterm/retrotodo/task"
)

// ErrNoTTY is returned when a picker is requested outside a terminal.
var ErrNoTTY = errors.New("interactive selection requires a terminal")

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Pick shows an interactive selector and returns the chosen task.
// ok is false when the user cancels.
func Pick(theme *ui.Theme, title string, tasks []task.Task, now time.Time) (chosen task.Task, ok bool, err error) {
	if len(tasks) == 0 {
		return task.Task{}, false, nil
	}
	if !IsTTY(os.Stdin) || !IsTTY(os.Stdout) {
		return task.Task{}, false, ErrNoTTY
	}

	model := newModel(theme, title, tasks, now)
	program := tea.NewProgram(model)
	final, err := program.Run()
	if err != nil {
		return task.Task{}, false, err
	}

	m, isModel := final.(pickerModel)
	if !isModel || !m.chosen {
		return task.Task{}, false, nil
	}
	return m.tasks[m.cursor], true, nil
}

type pickerModel struct {
	theme  *ui.Theme
	title  string
	tasks  []task.Task
	now    time.Time
	cursor int
	chosen bool
}

func newModel(theme *ui.Theme, title string, tasks []task.Task, now time.Time) pickerModel {
	return pickerModel{theme: theme, title: title, tasks: tasks, now: now}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString("\n\n")

	for i, tsk := range m.tasks {
		marker := "  "
		line := fmt.Sprintf("%d  %s  %s", tsk.ID, tsk.Title, m.theme.DueDate(tsk.DueDate, m.now))
		if i == m.cursor {
			marker = m.theme.Header.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(ui.TruncateTableCell(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("up/down to move, enter to select, q to cancel"))
	b.WriteString("\n")
	return b.String()
}
