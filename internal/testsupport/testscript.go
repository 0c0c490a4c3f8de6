// Package testsupport holds shared helpers for end-to-end script tests.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	retroPath string
	buildErr  error
)

// BuildRetro builds the retro binary once and returns its path.
func BuildRetro(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "retro-bin-")
		if err != nil {
			buildErr = err
			return
		}

		retroPath = filepath.Join(binDir, "retro")
		cmd := exec.Command("go", "build", "-o", retroPath, "./cmd/retro")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build retro: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return retroPath
}

// SetupScriptEnv configures common environment variables for testscript.
// Each script gets its own home directory and runs without color so output
// assertions stay stable.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("RETRO", BuildRetro(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(filepath.Join(homeDir, ".config", "retrotodo"), 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdTaskID finds a task by title in a data file and stores its ID in an
// env var.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE TITLE VAR")
	}

	var doc struct {
		Tasks map[string]struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
		} `json:"tasks"`
	}
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		ts.Fatalf("parse task data: %v", err)
	}

	title := args[1]
	for _, item := range doc.Tasks {
		if item.Title == title {
			ts.Setenv(args[2], strconv.Itoa(item.ID))
			return
		}
	}

	ts.Fatalf("task with title %q not found", title)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
