// Package scan discovers FLAC files under a directory tree.
//
// Discovery is a plain recursive walk with case-insensitive extension
// matching; results are sorted so processing order is deterministic across
// filesystems. The directory count is reported alongside for operator
// context ("N files found in M directories").
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions are the recognized FLAC file extensions (lowercase,
// with leading dot).
var DefaultExtensions = []string{".flac", ".fla"}

// Result is one completed discovery pass.
type Result struct {
	// Files holds the matched paths in sorted order.
	Files []string
	// Directories counts every directory walked, the root included.
	Directories int
}

// FLACFiles walks root and returns the FLAC files beneath it. A root that
// is not a directory is an error; unreadable subtrees abort the walk so a
// partial library is never silently treated as complete.
func FLACFiles(root string, extensions []string) (Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return Result{}, fmt.Errorf("inspect directory %q: %w", root, err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("not a valid directory: %s", root)
	}

	match := extensionSet(extensions)
	result := Result{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			result.Directories++
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if match[ext] {
			result.Files = append(result.Files, path)
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("walk %q: %w", root, err)
	}
	sort.Strings(result.Files)
	return result, nil
}

func extensionSet(extensions []string) map[string]bool {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}
