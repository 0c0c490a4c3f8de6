package paths

import (
	"path/filepath"
	"testing"
)

func TestGlobalConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := GlobalConfigFile()
	if err != nil {
		t.Fatalf("GlobalConfigFile() error: %v", err)
	}

	want := filepath.Join(home, ".config", "retrotodo", "config.toml")
	if got != want {
		t.Errorf("GlobalConfigFile() = %q, want %q", got, want)
	}
}

func TestProjectConfigFile(t *testing.T) {
	if got := ProjectConfigFile("/work"); got != filepath.Join("/work", "retrotodo.toml") {
		t.Errorf("ProjectConfigFile() = %q", got)
	}
}
