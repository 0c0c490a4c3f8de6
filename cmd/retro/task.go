package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neonterm/retrotodo/internal/datetext"
	"github.com/neonterm/retrotodo/internal/markdown"
	"github.com/neonterm/retrotodo/internal/picker"
	"github.com/neonterm/retrotodo/internal/ui"
	"github.com/neonterm/retrotodo/internal/validation"
	"github.com/neonterm/retrotodo/task"
)

var (
	errInvalidSortKey   = errors.New("invalid sort key")
	errInvalidDueBucket = errors.New("invalid due bucket")
)

// add
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addDescription string
	addPriority    string
	addTags        []string
	addDue         string
	addRecurrence  string
)

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listStatus     string
	listPriorities []string
	listTags       []string
	listAllTags    bool
	listDue        string
	listSort       string
	listDesc       bool
	listJSON       bool
)

// show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// update
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields on a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

var (
	updateTitle       string
	updateDescription string
	updatePriority    string
	updateTags        []string
	updateClearTags   bool
	updateDue         string
	updateClearDue    bool
	updateRecurrence  string
)

// complete
var completeCmd = &cobra.Command{
	Use:   "complete [id]",
	Short: "Mark a task as completed",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runComplete,
}

// reopen
var reopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Reopen a completed task",
	Args:  cobra.ExactArgs(1),
	RunE:  runReopen,
}

// delete
var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a task",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDelete,
}

var deleteForce bool

// search
var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search tasks by title and description",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearch,
}

var searchJSON bool

// stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(addCmd, listCmd, showCmd, updateCmd, completeCmd,
		reopenCmd, deleteCmd, searchCmd, statsCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Task description (markdown)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (low, medium, high, urgent)")
	addCmd.Flags().StringArrayVarP(&addTags, "tag", "t", nil, "Tag (repeatable)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (2006-01-02, \"tomorrow\", ...)")
	addCmd.Flags().StringVar(&addRecurrence, "recur", "", "Recurrence (daily, weekly, monthly)")

	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (pending, completed)")
	listCmd.Flags().StringSliceVar(&listPriorities, "priority", nil, "Filter by priority (repeatable)")
	listCmd.Flags().StringArrayVarP(&listTags, "tag", "t", nil, "Filter by tag (repeatable)")
	listCmd.Flags().BoolVar(&listAllTags, "all-tags", false, "Require every given tag instead of any")
	listCmd.Flags().StringVar(&listDue, "due", "", "Filter by due bucket (overdue, today, week, none)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort key (priority, due_date, created_at, title)")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "Sort in descending order")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "New description")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "New priority")
	updateCmd.Flags().StringArrayVarP(&updateTags, "tag", "t", nil, "Replacement tag list (repeatable)")
	updateCmd.Flags().BoolVar(&updateClearTags, "clear-tags", false, "Remove all tags")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "New due date")
	updateCmd.Flags().BoolVar(&updateClearDue, "clear-due", false, "Remove the due date")
	updateCmd.Flags().StringVar(&updateRecurrence, "recur", "", "New recurrence (none, daily, weekly, monthly)")

	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip the confirmation prompt")

	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	opts := task.CreateOptions{
		Title:       args[0],
		Description: addDescription,
		Priority:    task.Priority(addPriority),
		Tags:        addTags,
		Recurrence:  task.RecurrencePattern(addRecurrence),
	}
	if addPriority == "" && a.cfg.Defaults.Priority != "" {
		opts.Priority = task.Priority(a.cfg.Defaults.Priority)
	}
	if addDue != "" {
		due, err := datetext.Parse(addDue, time.Now())
		if err != nil {
			return err
		}
		opts.DueDate = &due
	}

	created, err := a.service.Create(opts)
	if err != nil {
		return err
	}

	fmt.Printf("Added task %d: %s\n", created.ID, created.Title)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	filter := task.Filter{Tags: listTags, TagsAll: listAllTags}
	if listStatus != "" {
		status := task.Status(listStatus)
		if !status.IsValid() {
			return validation.FormatInvalidValueError(task.ErrInvalidStatus, status, task.ValidStatuses())
		}
		filter.Status = &status
	}
	for _, p := range listPriorities {
		priority := task.Priority(p)
		if !priority.IsValid() {
			return validation.FormatInvalidValueError(task.ErrInvalidPriority, priority, task.ValidPriorities())
		}
		filter.Priorities = append(filter.Priorities, priority)
	}
	if listDue != "" {
		bucket := task.DueBucket(listDue)
		if !bucket.IsValid() {
			return validation.FormatInvalidValueError(errInvalidDueBucket, bucket, task.ValidDueBuckets())
		}
		filter.Due = bucket
	}

	now := time.Now()
	tasks := filter.Apply(a.service.List(), now)

	if listSort != "" {
		key := task.SortKey(listSort)
		if !key.IsValid() {
			return validation.FormatInvalidValueError(errInvalidSortKey, key, task.ValidSortKeys())
		}
		tasks = task.Sort(tasks, key, listDesc)
	}

	if listJSON {
		return printJSON(tasks)
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}
	fmt.Print(ui.TaskTable(a.theme, tasks, now))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	tasks := make([]task.Task, 0, len(args))
	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return err
		}
		t, err := a.service.Get(id)
		if err != nil {
			return err
		}
		tasks = append(tasks, *t)
	}

	if showJSON {
		return printJSON(tasks)
	}

	now := time.Now()
	for _, t := range tasks {
		description := markdown.Render(a.theme.Styled, 72, t.Description)
		fmt.Println(ui.TaskDetail(a.theme, t, description, now))
	}
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	opts := task.UpdateOptions{}

	// Only set fields that were explicitly provided.
	if cmd.Flags().Changed("title") {
		opts.Title = &updateTitle
	}
	if cmd.Flags().Changed("description") {
		opts.Description = &updateDescription
	}
	if cmd.Flags().Changed("priority") {
		priority := task.Priority(updatePriority)
		opts.Priority = &priority
	}
	if cmd.Flags().Changed("recur") {
		recurrence := task.RecurrencePattern(updateRecurrence)
		opts.Recurrence = &recurrence
	}
	if updateClearTags {
		opts.Tags = []string{}
	} else if cmd.Flags().Changed("tag") {
		opts.Tags = updateTags
	}
	if updateClearDue {
		opts.ClearDueDate = true
	} else if cmd.Flags().Changed("due") {
		due, err := datetext.Parse(updateDue, time.Now())
		if err != nil {
			return err
		}
		opts.DueDate = &due
	}

	updated, err := a.service.Update(id, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Updated task %d: %s\n", updated.ID, updated.Title)
	return nil
}

func runComplete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, ok, err := resolveTaskID(a, args, "Select a task to complete", pendingTasks(a))
	if err != nil || !ok {
		return err
	}

	completed, next, err := a.service.Complete(id)
	if err != nil {
		return err
	}

	fmt.Printf("Completed task %d: %s\n", completed.ID, completed.Title)
	if next != nil {
		fmt.Printf("Scheduled next occurrence as task %d, due %s\n",
			next.ID, next.DueDate.Format("2006-01-02 15:04"))
	}
	return nil
}

func runReopen(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	reopened, err := a.service.Reopen(id)
	if err != nil {
		return err
	}

	fmt.Printf("Reopened task %d: %s\n", reopened.ID, reopened.Title)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, ok, err := resolveTaskID(a, args, "Select a task to delete", a.service.List())
	if err != nil || !ok {
		return err
	}

	t, err := a.service.Get(id)
	if err != nil {
		return err
	}

	if !deleteForce {
		confirmed, err := confirm(fmt.Sprintf("Delete task %d %q?", t.ID, t.Title))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if _, err := a.service.Delete(id); err != nil {
		return err
	}

	fmt.Printf("Deleted task %d: %s\n", t.ID, t.Title)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	keyword := ""
	if len(args) == 1 {
		keyword = args[0]
	}
	tasks := task.Search(a.service.List(), keyword)

	if searchJSON {
		return printJSON(tasks)
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}
	fmt.Print(ui.TaskTable(a.theme, tasks, time.Now()))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println(ui.StatsPanel(a.theme, *a.service.Statistics()))
	return nil
}

func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}

// resolveTaskID returns the ID from args, or runs the interactive picker
// when none was given. ok is false when nothing was selected.
func resolveTaskID(a *app, args []string, title string, candidates []task.Task) (int, bool, error) {
	if len(args) == 1 {
		id, err := parseTaskID(args[0])
		return id, err == nil, err
	}

	if len(candidates) == 0 {
		fmt.Println("No tasks found.")
		return 0, false, nil
	}

	chosen, ok, err := picker.Pick(a.theme, title, candidates, time.Now())
	if err != nil {
		return 0, false, err
	}
	if !ok {
		fmt.Println("Aborted.")
		return 0, false, nil
	}
	return chosen.ID, true, nil
}

func pendingTasks(a *app) []task.Task {
	pending := task.StatusPending
	return task.Filter{Status: &pending}.Apply(a.service.List(), time.Now())
}

func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
