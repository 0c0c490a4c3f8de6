package task

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "todo_data.json")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func sampleTask(id int) Task {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	due := now.Add(48 * time.Hour)
	return Task{
		ID:          id,
		Title:       "Buy milk",
		Description: "2% if they have it",
		Status:      StatusPending,
		Priority:    PriorityHigh,
		Tags:        []string{"errands", "groceries"},
		DueDate:     &due,
		Recurrence:  RecurrenceWeekly,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestStoreOpenMissingFile(t *testing.T) {
	store, _ := openTestStore(t)

	if store.WasReset() {
		t.Error("WasReset() = true for a missing file, want false")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
	if got := store.NextID(); got != 1 {
		t.Errorf("NextID() on empty store = %d, want 1", got)
	}
}

func TestStoreInsertGet(t *testing.T) {
	store, _ := openTestStore(t)

	want := sampleTask(1)
	if err := store.Insert(want); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}

	got, ok := store.Get(1)
	if !ok {
		t.Fatal("Get(1) not found after insert")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get(1) = %+v, want %+v", got, want)
	}

	if _, ok := store.Get(99); ok {
		t.Error("Get(99) found, want not found")
	}
}

func TestStoreInsertDuplicateID(t *testing.T) {
	store, _ := openTestStore(t)

	if err := store.Insert(sampleTask(1)); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	if err := store.Insert(sampleTask(1)); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate Insert() = %v, want %v", err, ErrDuplicateID)
	}
}

func TestStoreGetAllAscendingID(t *testing.T) {
	store, _ := openTestStore(t)

	for _, id := range []int{3, 1, 2} {
		task := sampleTask(id)
		if err := store.Insert(task); err != nil {
			t.Fatalf("Insert(%d) error: %v", id, err)
		}
	}

	all := store.GetAll()
	if len(all) != 3 {
		t.Fatalf("GetAll() returned %d tasks, want 3", len(all))
	}
	for i, want := range []int{1, 2, 3} {
		if all[i].ID != want {
			t.Errorf("GetAll()[%d].ID = %d, want %d", i, all[i].ID, want)
		}
	}
}

func TestStoreUpdate(t *testing.T) {
	store, _ := openTestStore(t)

	task := sampleTask(1)
	if err := store.Insert(task); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}

	task.Title = "Buy oat milk"
	found, err := store.Update(task)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !found {
		t.Error("Update() = false for existing task, want true")
	}

	got, _ := store.Get(1)
	if got.Title != "Buy oat milk" {
		t.Errorf("title after update = %q, want %q", got.Title, "Buy oat milk")
	}

	missing := sampleTask(42)
	found, err = store.Update(missing)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if found {
		t.Error("Update() = true for missing task, want false")
	}
}

func TestStoreDelete(t *testing.T) {
	store, _ := openTestStore(t)

	if err := store.Insert(sampleTask(1)); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}

	found, err := store.Delete(1)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if !found {
		t.Error("Delete() = false for existing task, want true")
	}
	if _, ok := store.Get(1); ok {
		t.Error("Get(1) found after delete")
	}

	found, err = store.Delete(1)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if found {
		t.Error("Delete() = true for already-deleted task, want false")
	}
}

// Serializing a task and loading it back yields field-for-field equality.
func TestStoreRoundTrip(t *testing.T) {
	store, path := openTestStore(t)

	want := sampleTask(1)
	completed := sampleTask(2)
	completedAt := time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC)
	completed.Status = StatusCompleted
	completed.CompletedAt = &completedAt
	undated := sampleTask(3)
	undated.DueDate = nil
	undated.Description = ""
	undated.Tags = nil

	for _, task := range []Task{want, completed, undated} {
		if err := store.Insert(task); err != nil {
			t.Fatalf("Insert(%d) error: %v", task.ID, err)
		}
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()

	if reopened.Len() != 3 {
		t.Fatalf("reopened Len() = %d, want 3", reopened.Len())
	}
	for _, original := range []Task{want, completed, undated} {
		loaded, ok := reopened.Get(original.ID)
		if !ok {
			t.Fatalf("task %d missing after reopen", original.ID)
		}
		if !tasksEqual(loaded, original) {
			t.Errorf("round trip mismatch for %d:\n got %+v\nwant %+v", original.ID, loaded, original)
		}
	}
}

// tasksEqual compares field by field, using time.Equal for timestamps since
// the monotonic clock reading does not survive serialization.
func tasksEqual(a, b Task) bool {
	if a.ID != b.ID || a.Title != b.Title || a.Description != b.Description ||
		a.Status != b.Status || a.Priority != b.Priority || a.Recurrence != b.Recurrence {
		return false
	}
	if !reflect.DeepEqual(a.Tags, b.Tags) {
		return false
	}
	if !a.CreatedAt.Equal(b.CreatedAt) || !a.UpdatedAt.Equal(b.UpdatedAt) {
		return false
	}
	if (a.DueDate == nil) != (b.DueDate == nil) {
		return false
	}
	if a.DueDate != nil && !a.DueDate.Equal(*b.DueDate) {
		return false
	}
	if (a.CompletedAt == nil) != (b.CompletedAt == nil) {
		return false
	}
	if a.CompletedAt != nil && !a.CompletedAt.Equal(*b.CompletedAt) {
		return false
	}
	return true
}

// The on-disk document maps string-encoded integer IDs to task records with
// lowercase enum strings.
func TestStoreFileFormat(t *testing.T) {
	store, path := openTestStore(t)

	if err := store.Insert(sampleTask(7)); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}

	var doc struct {
		Tasks map[string]map[string]any `json:"tasks"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse store file: %v", err)
	}

	record, ok := doc.Tasks["7"]
	if !ok {
		t.Fatalf("document key %q missing, have %v", "7", doc.Tasks)
	}
	if got := record["priority"]; got != "high" {
		t.Errorf("priority on disk = %v, want %q", got, "high")
	}
	if got := record["status"]; got != "pending" {
		t.Errorf("status on disk = %v, want %q", got, "pending")
	}
	if got := record["recurrence_pattern"]; got != "weekly" {
		t.Errorf("recurrence_pattern on disk = %v, want %q", got, "weekly")
	}
}

func TestStoreCorruptFileResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() on corrupt file error: %v", err)
	}
	defer store.Close()

	if !store.WasReset() {
		t.Error("WasReset() = false for corrupt file, want true")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d after reset, want 0", store.Len())
	}

	// The broken file is preserved for inspection.
	if _, err := os.Stat(path + ".corrupt"); err != nil {
		t.Errorf("corrupt file not set aside: %v", err)
	}

	// The store is usable after the reset.
	if err := store.Insert(sampleTask(1)); err != nil {
		t.Errorf("Insert() after reset error: %v", err)
	}
}

func TestStorePersistsAfterEveryWrite(t *testing.T) {
	store, path := openTestStore(t)

	if err := store.Insert(sampleTask(1)); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}

	// Without any explicit flush, a fresh store sees the write.
	fresh, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer fresh.Close()

	if fresh.Len() != 1 {
		t.Errorf("fresh store Len() = %d, want 1", fresh.Len())
	}
}
