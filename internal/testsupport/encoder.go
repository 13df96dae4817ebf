package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// StubEncoder writes a shell script that mimics the flac executable: it
// answers the -v version query with the given version and exits with
// encodeExit for every other invocation. Returns the script path.
func StubEncoder(t testing.TB, version string, encodeExit int) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "flac")
	script := fmt.Sprintf("#!/bin/sh\nif [ \"$1\" = \"-v\" ]; then echo \"flac %s\"; exit 0; fi\nexit %d\n", version, encodeExit)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub encoder: %v", err)
	}
	return path
}

// StubEncoderScript writes a shell script with the provided body, for tests
// that need custom encoder behavior (sleeps, file rewrites, concurrency
// counters). The body runs for encode invocations; -v still reports version.
func StubEncoderScript(t testing.TB, version, body string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "flac")
	script := fmt.Sprintf("#!/bin/sh\nif [ \"$1\" = \"-v\" ]; then echo \"flac %s\"; exit 0; fi\n%s\n", version, body)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub encoder: %v", err)
	}
	return path
}
