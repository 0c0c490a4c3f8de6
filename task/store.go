package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/gofrs/flock"
)

// ErrDuplicateID is returned when inserting a task whose ID already exists.
var ErrDuplicateID = errors.New("task ID already exists")

// IOError reports a filesystem-level failure in the store. It is fatal for
// the attempted operation and never retried internally.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// document is the on-disk shape: one JSON object mapping string-encoded
// integer IDs to task records.
type document struct {
	Tasks map[string]Task `json:"tasks"`
}

// Store is a document-oriented key-value layer over a single JSON file.
// An in-memory cache mirrors the file content; writes update the cache
// synchronously, then flush the whole document via an atomic rename, so the
// file is syntactically valid even if the process dies between operations.
//
// The store assumes one process at a time. File access is guarded by an
// advisory lock so that an accidental second invocation doesn't interleave
// partial writes, but cross-process coordination is otherwise not provided.
type Store struct {
	path  string
	flk   *flock.Flock
	cache map[int]Task
	reset bool
}

// Open loads the document at path, creating an empty collection when the
// file doesn't exist. An unparsable file is moved aside to <path>.corrupt
// and the store starts empty; WasReset reports this so the caller can warn
// the user about the data loss.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &IOError{Op: "create directory", Path: dir, Err: err}
		}
	}

	s := &Store{
		path:  path,
		flk:   flock.New(path + ".lock"),
		cache: make(map[int]Task),
	}

	if err := s.flk.Lock(); err != nil {
		return nil, &IOError{Op: "lock", Path: s.flk.Path(), Err: err}
	}
	defer s.flk.Unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err == nil {
		for key, t := range doc.Tasks {
			id, convErr := strconv.Atoi(key)
			if convErr != nil || id != t.ID {
				err = fmt.Errorf("document key %q does not match task ID %d", key, t.ID)
				break
			}
			s.cache[id] = t
		}
		if err == nil {
			return s, nil
		}
	}

	// Unparsable: preserve the broken file, then recover with an empty
	// collection. The reset flag lets the caller surface the loss once.
	if renameErr := os.Rename(path, path+".corrupt"); renameErr != nil {
		return nil, &IOError{Op: "set aside corrupt file", Path: path, Err: renameErr}
	}
	s.cache = make(map[int]Task)
	s.reset = true
	return s, nil
}

// WasReset reports whether the backing file was unparsable at open and the
// store recovered by initializing an empty collection.
func (s *Store) WasReset() bool {
	return s.reset
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Insert stores a task whose ID the caller has already assigned.
func (s *Store) Insert(t Task) error {
	if _, exists := s.cache[t.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
	}
	s.cache[t.ID] = t
	return s.save()
}

// Get returns the task with the given ID.
func (s *Store) Get(id int) (Task, bool) {
	t, ok := s.cache[id]
	return t, ok
}

// GetAll returns all tasks in ascending ID order. Callers that need another
// order must sort explicitly.
func (s *Store) GetAll() []Task {
	tasks := make([]Task, 0, len(s.cache))
	for _, t := range s.cache {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}

// Update replaces the stored record for the task's ID. It reports whether a
// matching record existed.
func (s *Store) Update(t Task) (bool, error) {
	if _, exists := s.cache[t.ID]; !exists {
		return false, nil
	}
	s.cache[t.ID] = t
	return true, s.save()
}

// Delete removes the task with the given ID. It reports whether a matching
// record existed.
func (s *Store) Delete(id int) (bool, error) {
	if _, exists := s.cache[id]; !exists {
		return false, nil
	}
	delete(s.cache, id)
	return true, s.save()
}

// NextID returns the next unique task ID based on the current collection.
func (s *Store) NextID() int {
	return NextID(s.GetAll())
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.cache)
}

// Close releases the store's lock file. The cache is write-through, so there
// is nothing to flush.
func (s *Store) Close() error {
	if err := os.Remove(s.flk.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &IOError{Op: "remove lock file", Path: s.flk.Path(), Err: err}
	}
	return nil
}

// save flushes the cache to disk. The document is written to a temp file in
// full, then atomically renamed over the target, so readers never observe a
// partial write.
func (s *Store) save() error {
	if err := s.flk.Lock(); err != nil {
		return &IOError{Op: "lock", Path: s.flk.Path(), Err: err}
	}
	defer s.flk.Unlock()

	doc := document{Tasks: make(map[string]Task, len(s.cache))}
	for id, t := range s.cache {
		doc.Tasks[strconv.Itoa(id)] = t
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &IOError{Op: "encode", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return &IOError{Op: "write temp file", Path: tmpPath, Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &IOError{Op: "rename temp file", Path: tmpPath, Err: err}
	}
	return nil
}
