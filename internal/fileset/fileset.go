// Package fileset provides in-memory, name-based file search and folder
// comparison. A Set holds the file paths beneath one or more root
// directories and supports union, difference, and intersection, either on
// full paths or on filenames alone. Paths are NFC-normalized so that sets
// built on different filesystems compare consistently.
package fileset

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Options controls how a Set is built.
type Options struct {
	// Relative stores paths relative to the root directory instead of
	// full paths. Only a single root is allowed in this mode.
	Relative bool
	// Lower stores paths and names lowercased, for case-insensitive
	// comparison across sets.
	Lower bool
}

// Set is an immutable collection of file paths and their base names.
// Operations return new sets and never modify their operands.
type Set struct {
	paths    map[string]struct{}
	names    map[string]struct{}
	roots    map[string]struct{}
	relative bool
	lower    bool
}

// Build walks the given root directories and collects every file beneath
// them into a Set.
func Build(roots []string, opts Options) (*Set, error) {
	if len(roots) == 0 {
		return nil, fmt.Errorf("at least one root directory is required")
	}
	rootSet := make(map[string]struct{}, len(roots))
	for _, root := range roots {
		rootSet[root] = struct{}{}
	}
	if opts.Relative && len(rootSet) > 1 {
		return nil, fmt.Errorf("relative paths require a single root directory, got %d", len(rootSet))
	}

	set := &Set{
		paths:    make(map[string]struct{}),
		names:    make(map[string]struct{}),
		roots:    rootSet,
		relative: opts.Relative,
		lower:    opts.Lower,
	}
	for root := range rootSet {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			stored := path
			if opts.Relative {
				rel, err := filepath.Rel(root, path)
				if err != nil {
					return err
				}
				stored = rel
			}
			set.add(canonical(stored, opts.Lower), canonical(entry.Name(), opts.Lower))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	}
	return set, nil
}

func canonical(s string, lower bool) string {
	s = norm.NFC.String(s)
	if lower {
		s = strings.ToLower(s)
	}
	return s
}

func (s *Set) add(path, name string) {
	s.paths[path] = struct{}{}
	s.names[name] = struct{}{}
}

// Len reports the number of files in the set.
func (s *Set) Len() int {
	return len(s.paths)
}

// Paths returns the stored paths in sorted order.
func (s *Set) Paths() []string {
	out := make([]string, 0, len(s.paths))
	for path := range s.paths {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// Names returns the distinct base names in sorted order.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FullPaths returns the set's paths joined to its root when the set was
// built with relative paths, and the stored paths otherwise.
func (s *Set) FullPaths() []string {
	if !s.relative {
		return s.Paths()
	}
	var root string
	for r := range s.roots {
		root = r
		break
	}
	out := make([]string, 0, len(s.paths))
	for path := range s.paths {
		out = append(out, filepath.Join(root, path))
	}
	sort.Strings(out)
	return out
}

// Union returns a set containing the files of both operands. If either
// operand was built with relative paths, the result holds full paths,
// since it may now span multiple roots.
func (s *Set) Union(other *Set) *Set {
	result := &Set{
		paths:    make(map[string]struct{}, len(s.paths)+len(other.paths)),
		names:    make(map[string]struct{}, len(s.names)+len(other.names)),
		roots:    make(map[string]struct{}, len(s.roots)+len(other.roots)),
		relative: false,
		lower:    s.lower,
	}
	if !s.relative && !other.relative {
		for path := range s.paths {
			result.paths[path] = struct{}{}
		}
		for path := range other.paths {
			result.paths[path] = struct{}{}
		}
	} else {
		for _, path := range s.FullPaths() {
			result.paths[path] = struct{}{}
		}
		for _, path := range other.FullPaths() {
			result.paths[path] = struct{}{}
		}
	}
	for name := range s.names {
		result.names[name] = struct{}{}
	}
	for name := range other.names {
		result.names[name] = struct{}{}
	}
	for root := range s.roots {
		result.roots[root] = struct{}{}
	}
	for root := range other.roots {
		result.roots[root] = struct{}{}
	}
	return result
}

// Subtract returns the files of s not present in other. When s holds full
// paths and other holds relative paths, a file is excluded if any of
// other's relative paths occurs within it. The reverse mix is rejected:
// relative paths on the left cannot be matched against full paths.
func (s *Set) Subtract(other *Set) (*Set, error) {
	if s.relative && !other.relative {
		return nil, fmt.Errorf("cannot subtract a full-path set from a relative-path set")
	}
	var paths map[string]struct{}
	if !s.relative && other.relative {
		paths = make(map[string]struct{})
		for path := range s.paths {
			if !containsAny(path, other.paths) {
				paths[path] = struct{}{}
			}
		}
	} else {
		paths = make(map[string]struct{})
		for path := range s.paths {
			if _, ok := other.paths[path]; !ok {
				paths[path] = struct{}{}
			}
		}
	}
	return s.derive(paths), nil
}

// Intersect returns the files present in both sets. When one operand
// holds relative paths, the full paths of the other are matched by
// containment.
func (s *Set) Intersect(other *Set) *Set {
	paths := make(map[string]struct{})
	switch {
	case s.relative != other.relative:
		full, partial := s.paths, other.paths
		if s.relative {
			full, partial = other.paths, s.paths
		}
		for path := range full {
			if containsAny(path, partial) {
				paths[path] = struct{}{}
			}
		}
	default:
		for path := range s.paths {
			if _, ok := other.paths[path]; ok {
				paths[path] = struct{}{}
			}
		}
	}
	return s.derive(paths)
}

// SubtractNames returns the files of s whose base names do not appear in
// other, irrespective of folder structure.
func (s *Set) SubtractNames(other *Set) *Set {
	paths := make(map[string]struct{})
	for path := range s.paths {
		if _, ok := other.names[filepath.Base(path)]; !ok {
			paths[path] = struct{}{}
		}
	}
	return s.derive(paths)
}

// IntersectNames returns the files of s whose base names also appear in
// other, irrespective of folder structure.
func (s *Set) IntersectNames(other *Set) *Set {
	paths := make(map[string]struct{})
	for path := range s.paths {
		if _, ok := other.names[filepath.Base(path)]; ok {
			paths[path] = struct{}{}
		}
	}
	return s.derive(paths)
}

// derive builds a new set from a path subset of s, recomputing names.
func (s *Set) derive(paths map[string]struct{}) *Set {
	names := make(map[string]struct{}, len(paths))
	for path := range paths {
		names[filepath.Base(path)] = struct{}{}
	}
	return &Set{
		paths:    paths,
		names:    names,
		roots:    s.roots,
		relative: s.relative,
		lower:    s.lower,
	}
}

func containsAny(path string, fragments map[string]struct{}) bool {
	for fragment := range fragments {
		if strings.Contains(path, fragment) {
			return true
		}
	}
	return false
}

// Match holds the locations of a searched filename within a set.
type Match struct {
	Name  string
	Paths []string
}

// Find locates each of the given filenames within the set, matching on
// path suffix case-insensitively. Results are ordered by name; a name
// with no occurrences yields a Match with an empty Paths slice.
func (s *Set) Find(names []string) []Match {
	sorted := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = canonical(name, false)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	matches := make([]Match, 0, len(sorted))
	for _, name := range sorted {
		needle := strings.ToLower(name)
		var found []string
		for path := range s.paths {
			if strings.HasSuffix(strings.ToLower(path), needle) {
				found = append(found, path)
			}
		}
		sort.Strings(found)
		matches = append(matches, Match{Name: name, Paths: found})
	}
	return matches
}
