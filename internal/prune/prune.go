// Package prune finds directories that hold no meaningful content. A
// directory qualifies when it has no subdirectories and no files, or when
// every file it holds is ignored by the configured filters (hidden files,
// files below a size threshold).
package prune

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Options controls which files are disregarded when judging a directory
// to be empty.
type Options struct {
	// IgnoreHidden disregards files whose names start with a dot.
	IgnoreHidden bool
	// IgnoreSizeKB disregards files smaller than this many kilobytes.
	IgnoreSizeKB int64
	// Progress, when set, is called with the running directory count as
	// the scan proceeds.
	Progress func(scanned int)
}

// Find walks root and returns the empty directories beneath it in sorted
// order. Only leaf directories qualify: a directory that contains nothing
// but empty subdirectories is not reported.
func Find(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("checking directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	ignoreBytes := opts.IgnoreSizeKB * 1024
	var empty []string
	scanned := 0

	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("reading %s: %w", dir, err)
		}
		scanned++
		if opts.Progress != nil {
			opts.Progress(scanned)
		}

		var files []os.DirEntry
		hasSubdir := false
		for _, entry := range entries {
			if entry.IsDir() {
				hasSubdir = true
				if err := walk(filepath.Join(dir, entry.Name())); err != nil {
					return err
				}
			} else {
				files = append(files, entry)
			}
		}
		if hasSubdir {
			return nil
		}
		if len(files) == 0 {
			empty = append(empty, dir)
			return nil
		}
		if !opts.IgnoreHidden && ignoreBytes == 0 {
			return nil
		}
		for _, file := range files {
			if opts.IgnoreHidden && strings.HasPrefix(file.Name(), ".") {
				continue
			}
			if ignoreBytes > 0 {
				info, err := file.Info()
				if err != nil {
					return fmt.Errorf("checking %s: %w", filepath.Join(dir, file.Name()), err)
				}
				if info.Size() < ignoreBytes {
					continue
				}
			}
			return nil
		}
		empty = append(empty, dir)
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	sort.Strings(empty)
	return empty, nil
}

// Remove deletes the given directories and anything still inside them.
func Remove(dirs []string) error {
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	return nil
}
