package files

import (
	"path/filepath"
	"testing"
)

func TestResolvePathHonorsTodoFile(t *testing.T) {
	tmp := t.TempDir()
	custom := filepath.Join(tmp, "custom.json")

	t.Setenv(EnvFile, custom)

	got, err := ResolvePath("ignored.json")
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}
	if got != custom {
		t.Fatalf("ResolvePath() = %q, want %q", got, custom)
	}
}

func TestResolvePathExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvFile, "~/lists/todo.json")

	got, err := ResolvePath("")
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}

	want := filepath.Join(home, "lists", "todo.json")
	if got != want {
		t.Fatalf("ResolvePath() = %q, want %q", got, want)
	}
}

func TestResolvePathFallsBackToConfigured(t *testing.T) {
	t.Setenv(EnvFile, "  ")

	got, err := ResolvePath("work.json")
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}
	if got != "work.json" {
		t.Fatalf("ResolvePath() = %q, want %q", got, "work.json")
	}
}

func TestResolvePathDefaultsToWorkingDirectory(t *testing.T) {
	t.Setenv(EnvFile, "")

	got, err := ResolvePath("")
	if err != nil {
		t.Fatalf("ResolvePath() error = %v", err)
	}
	if got != DefaultFileName {
		t.Fatalf("ResolvePath() = %q, want %q", got, DefaultFileName)
	}
}
