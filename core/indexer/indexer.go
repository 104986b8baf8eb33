// Package indexer renders a codebase into a single LLM-friendly
// markdown document, or into a plain list of indexable paths.
package indexer

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ksin-odoo/Tools/pkg/langmap"
	"github.com/ksin-odoo/Tools/pkg/pathfilter"
)

// Indexer walks a root directory and emits its non-excluded contents.
type Indexer struct {
	root   string
	filter *pathfilter.Filter
}

// New creates an Indexer rooted at the given directory.
func New(root string, filter *pathfilter.Filter) (*Indexer, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("root does not exist: %s", abs)
		}
		return nil, fmt.Errorf("cannot access root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", abs)
	}

	return &Indexer{root: abs, filter: filter}, nil
}

// Root returns the resolved absolute root directory.
func (ix *Indexer) Root() string { return ix.root }

// WriteIndex writes the full markdown index: a directory tree followed
// by the contents of every indexable file under the root.
func (ix *Indexer) WriteIndex(ctx context.Context, w io.Writer) error {
	if _, err := fmt.Fprint(w, "# Codebase Index\n\n## Directory Structure\n\n```\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n```\n\n## File Contents\n\n", ix.tree(ctx)); err != nil {
		return err
	}

	files, err := ix.collectFiles(ctx)
	if err != nil {
		return err
	}
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ix.writeFileContent(w, rel); err != nil {
			return err
		}
	}

	return nil
}

// WriteIndexList writes a markdown index restricted to the listed paths
// (relative to the root). Entries that are missing, excluded, or not
// regular files are skipped.
func (ix *Indexer) WriteIndexList(ctx context.Context, w io.Writer, paths []string) error {
	if _, err := fmt.Fprint(w, "# Codebase Index\n\n## File Contents\n\n"); err != nil {
		return err
	}

	for _, rel := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ix.filter.Excluded(rel) {
			continue
		}
		info, err := os.Stat(filepath.Join(ix.root, filepath.FromSlash(rel)))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if err := ix.writeFileContent(w, rel); err != nil {
			return err
		}
	}

	return nil
}

// WriteSimpleList writes one root-relative path per line. When paths is
// nil every non-excluded entry under the root is listed in sorted
// order; otherwise only the listed entries that exist and pass the
// filter are written, in list order.
func (ix *Indexer) WriteSimpleList(ctx context.Context, w io.Writer, paths []string) error {
	if paths == nil {
		all, err := ix.collectEntries(ctx)
		if err != nil {
			return err
		}
		paths = all
	} else {
		kept := paths[:0:0]
		for _, rel := range paths {
			if ix.filter.Excluded(rel) {
				continue
			}
			if _, err := os.Stat(filepath.Join(ix.root, filepath.FromSlash(rel))); err != nil {
				continue
			}
			kept = append(kept, rel)
		}
		paths = kept
	}

	for _, rel := range paths {
		if _, err := fmt.Fprintln(w, rel); err != nil {
			return err
		}
	}
	return nil
}

// collectFiles returns the sorted relative paths of all indexable
// regular files under the root.
func (ix *Indexer) collectFiles(ctx context.Context) ([]string, error) {
	return ix.collect(ctx, false)
}

// collectEntries returns the sorted relative paths of all non-excluded
// files and directories under the root.
func (ix *Indexer) collectEntries(ctx context.Context) ([]string, error) {
	return ix.collect(ctx, true)
}

func (ix *Indexer) collect(ctx context.Context, includeDirs bool) ([]string, error) {
	var out []string

	err := filepath.WalkDir(ix.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == ix.root {
			return nil
		}

		rel, err := filepath.Rel(ix.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if ix.filter.Excluded(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if includeDirs {
				out = append(out, rel)
			}
			return nil
		}
		if includeDirs || d.Type().IsRegular() {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(out)
	return out, nil
}

// writeFileContent emits one file as a bold relative path followed by a
// fenced code block. Binary files and unreadable files are skipped.
func (ix *Indexer) writeFileContent(w io.Writer, rel string) error {
	data, err := os.ReadFile(filepath.Join(ix.root, filepath.FromSlash(rel)))
	if err != nil {
		slog.Warn("skipping unreadable file", "path", rel, "error", err)
		return nil
	}
	if !utf8.Valid(data) {
		return nil
	}

	_, err = fmt.Fprintf(w, "**%s**\n\n```%s\n%s\n```\n\n", rel, langmap.ForPath(rel), data)
	return err
}

// tree renders the directory structure, preferring the external tree
// command and falling back to a manual walk when it is unavailable.
func (ix *Indexer) tree(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "tree", "-a", "-I", ix.filter.TreePatterns(), ix.root).Output()
	if err == nil {
		return strings.TrimRight(string(out), "\n")
	}
	return ix.manualTree()
}

func (ix *Indexer) manualTree() string {
	var b strings.Builder
	b.WriteString(filepath.Base(ix.root))
	ix.writeTreeLevel(&b, ix.root, "", "")
	return b.String()
}

func (ix *Indexer) writeTreeLevel(b *strings.Builder, dir, relDir, prefix string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	kept := entries[:0:0]
	for _, entry := range entries {
		rel := entry.Name()
		if relDir != "" {
			rel = relDir + "/" + rel
		}
		if !ix.filter.Excluded(rel) {
			kept = append(kept, entry)
		}
	}

	for i, entry := range kept {
		branch, childPrefix := "├── ", prefix+"│   "
		if i == len(kept)-1 {
			branch, childPrefix = "└── ", prefix+"    "
		}
		fmt.Fprintf(b, "\n%s%s%s", prefix, branch, entry.Name())

		if entry.IsDir() {
			rel := entry.Name()
			if relDir != "" {
				rel = relDir + "/" + rel
			}
			ix.writeTreeLevel(b, filepath.Join(dir, entry.Name()), rel, childPrefix)
		}
	}
}
