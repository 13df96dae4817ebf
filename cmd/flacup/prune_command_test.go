package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPruneCommandListOnly(t *testing.T) {
	root := t.TempDir()
	empty := filepath.Join(root, "empty")
	if err := os.MkdirAll(empty, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	out, _, err := runCLI(t, "", "prune", "--remove", "no", root)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	requireContains(t, out, empty)
	requireContains(t, out, "1 empty directories found")

	if _, err := os.Stat(empty); err != nil {
		t.Fatalf("directory must survive --remove no: %v", err)
	}
}

func TestPruneCommandRemove(t *testing.T) {
	root := t.TempDir()
	empty := filepath.Join(root, "empty")
	if err := os.MkdirAll(empty, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	out, _, err := runCLI(t, "", "prune", "--remove", "yes", root)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	requireContains(t, out, "Removed 1 empty directories")

	if _, err := os.Stat(empty); !os.IsNotExist(err) {
		t.Fatalf("directory still present: %v", err)
	}
}

func TestPruneCommandRejectsInvalidRemoveMode(t *testing.T) {
	if _, _, err := runCLI(t, "", "prune", "--remove", "maybe", t.TempDir()); err == nil {
		t.Fatal("expected error for invalid --remove value")
	}
}
