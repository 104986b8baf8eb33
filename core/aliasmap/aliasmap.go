// Package aliasmap discovers addon modules under a set of root
// directories and maps each module name to its static/src directory.
package aliasmap

import (
	"log/slog"
	"os"
	"path/filepath"
)

// The two roots every scan includes, relative to the base directory.
const (
	CommunityRoot  = "community/addons"
	EnterpriseRoot = "enterprise"
)

// markerPath is the subdirectory whose presence qualifies a child of a
// root directory as an addon module.
var markerPath = filepath.Join("static", "src")

// Map holds alias entries keyed by module directory name. Targets are
// slash-separated paths to the module's static/src directory, relative
// to the base directory the map was built against.
type Map map[string]string

// WithFixedRoots prepends the community and enterprise roots, resolved
// against baseDir, to the caller-supplied extra roots. The fixed roots
// are passed to Build explicitly so it never consults hidden state.
func WithFixedRoots(baseDir string, extra []string) []string {
	roots := make([]string, 0, len(extra)+2)
	roots = append(roots,
		filepath.Join(baseDir, filepath.FromSlash(CommunityRoot)),
		filepath.Join(baseDir, EnterpriseRoot),
	)
	return append(roots, extra...)
}

// Build scans each root in order for child directories containing a
// static/src subdirectory and returns the resulting alias map. A root
// that does not exist or is not a directory contributes nothing; one
// bad extra root must not prevent the others from being indexed.
// Duplicate module names across roots resolve last-write-wins in scan
// order. An empty map is a valid result.
func Build(baseDir string, roots []string) Map {
	aliases := make(Map)

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			slog.Warn("skipping root: not a directory", "root", root)
			continue
		}

		entries, err := os.ReadDir(root)
		if err != nil {
			slog.Warn("skipping root: not readable", "root", root, "error", err)
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			marker := filepath.Join(root, entry.Name(), markerPath)
			if info, err := os.Stat(marker); err != nil || !info.IsDir() {
				continue
			}

			target, err := filepath.Rel(baseDir, marker)
			if err != nil {
				// A root on another volume has no path relative to
				// baseDir; keep the absolute path instead.
				target = marker
			}
			aliases[entry.Name()] = filepath.ToSlash(target)
		}
	}

	return aliases
}
