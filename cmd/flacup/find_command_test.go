package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, rel := range paths {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func TestFindCommand(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a/track.flac", "b/track.flac", "c/other.flac")

	out, _, err := runCLI(t, "", "find", root, "track.flac", "missing.flac")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	requireContains(t, out, filepath.Join(root, "a", "track.flac"))
	requireContains(t, out, filepath.Join(root, "b", "track.flac"))
	requireContains(t, out, "missing.flac:")
	requireContains(t, out, "No results")
}

func TestDiffCommand(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeTree(t, rootA, "shared/x.flac", "only_a/y.flac")
	writeTree(t, rootB, "shared/x.flac")

	out, _, err := runCLI(t, "", "diff", rootA, rootB)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	requireContains(t, out, filepath.Join("only_a", "y.flac"))
	requireContains(t, out, "1 files only in")
}

func TestDiffCommandNamesOnly(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeTree(t, rootA, "disc1/track.flac", "disc1/extra.flac")
	writeTree(t, rootB, "other/track.flac")

	out, _, err := runCLI(t, "", "diff", "--names", rootA, rootB)
	if err != nil {
		t.Fatalf("diff --names: %v", err)
	}
	requireContains(t, out, filepath.Join("disc1", "extra.flac"))
	requireContains(t, out, "1 files only in")
}
