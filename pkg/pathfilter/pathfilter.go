// Package pathfilter decides which paths the indexer skips. It combines
// a built-in exclude set, caller-supplied patterns, and the patterns
// from a .gitignore file at the scan root.
package pathfilter

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultPatterns are always excluded: VCS metadata, dependency and
// build output directories, editor state, and binary or archive file
// extensions that have no place in a text index.
var defaultPatterns = []string{
	".git", ".svn", ".hg",
	"node_modules", "__pycache__",
	"dist", "build", "target", "venv", ".env",
	".idea", ".vscode", ".DS_Store",
	"*.pyc", "*.pyo", "*.pyd",
	"*.so", "*.dylib", "*.dll",
	"*.class", "*.o", "*.a", "*.lib", "*.exe",
	"*.log", "*.tmp", "*.temp",
	"*.swp", "*.swo",
	"*.bak", "*.backup", "*.orig", "*.rej", "*.patch", "*.diff",
	"*.zip", "*.tar", "*.gz", "*.rar", "*.7z", "*.bz2", "*.xz", "*.tgz",
}

// Filter reports whether a path is excluded from indexing.
type Filter struct {
	patterns  []string
	gitignore []string
}

// Load builds a Filter from the default patterns, any extra patterns,
// and the .gitignore at root when one exists. A missing .gitignore is
// not an error.
func Load(root string, extra []string) (*Filter, error) {
	patterns := make([]string, 0, len(defaultPatterns)+len(extra))
	patterns = append(patterns, defaultPatterns...)
	patterns = append(patterns, extra...)

	gitignore, err := loadGitignore(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil, err
	}

	return &Filter{patterns: patterns, gitignore: gitignore}, nil
}

// Excluded reports whether the slash- or OS-separated path relative to
// the scan root matches any exclude pattern. Exclude patterns are
// matched against each path segment, so a pattern like "node_modules"
// excludes the directory at any depth; .gitignore patterns are matched
// against the full relative path and the base name.
func (f *Filter) Excluded(relPath string) bool {
	p := filepath.ToSlash(relPath)
	if p == "." || p == "" {
		return false
	}

	for _, seg := range strings.Split(p, "/") {
		for _, pat := range f.patterns {
			if ok, err := doublestar.Match(pat, seg); err == nil && ok {
				return true
			}
		}
	}

	for _, pat := range f.gitignore {
		if ok, err := doublestar.Match(pat, p); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pat, path.Base(p)); err == nil && ok {
			return true
		}
	}

	return false
}

// TreePatterns returns the active exclude patterns in a form usable as
// the -I argument of the external tree command.
func (f *Filter) TreePatterns() string {
	return strings.Join(f.patterns, "|")
}

func loadGitignore(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer file.Close()

	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Directory patterns like "build/" match the directory itself.
		line = strings.TrimSuffix(line, "/")
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return patterns, nil
}
