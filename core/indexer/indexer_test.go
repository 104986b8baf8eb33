package indexer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ksin-odoo/Tools/pkg/pathfilter"
)

// fixtureRoot builds a small codebase with indexable sources, an
// excluded VCS directory, and a binary file.
func fixtureRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"README.md":                           "# Addons\n",
		"addons/sale/models/sale.py":          "class SaleOrder:\n    pass\n",
		"addons/sale/static/src/js/widget.js": "export const widget = 1;\n",
		".git/config":                         "[core]\n",
		"debug.log":                           "noise\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "blob.dat"), []byte{0xff, 0xfe, 0x00, 0x01}, 0o644); err != nil {
		t.Fatalf("writing binary file: %v", err)
	}

	return root
}

func newIndexer(t *testing.T, root string) *Indexer {
	t.Helper()
	filter, err := pathfilter.Load(root, nil)
	if err != nil {
		t.Fatalf("pathfilter.Load: %v", err)
	}
	ix, err := New(root, filter)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ix
}

func TestWriteIndex(t *testing.T) {
	root := fixtureRoot(t)
	ix := newIndexer(t, root)

	var buf bytes.Buffer
	if err := ix.WriteIndex(context.Background(), &buf); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Codebase Index",
		"## Directory Structure",
		"## File Contents",
		"**addons/sale/models/sale.py**",
		"```python\nclass SaleOrder:",
		"**addons/sale/static/src/js/widget.js**",
		"```javascript\nexport const widget = 1;",
		"**README.md**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("index missing %q", want)
		}
	}

	if strings.Contains(out, "**.git/config**") {
		t.Error("excluded VCS file leaked into the index")
	}
	if strings.Contains(out, "**debug.log**") {
		t.Error("excluded log file leaked into the index")
	}
	if strings.Contains(out, "\xff\xfe") {
		t.Error("binary content leaked into the index")
	}
}

func TestWriteIndexList(t *testing.T) {
	root := fixtureRoot(t)
	ix := newIndexer(t, root)

	var buf bytes.Buffer
	paths := []string{
		"addons/sale/models/sale.py",
		"debug.log",         // excluded
		"does/not/exist.py", // missing
		"addons/sale",       // directory, not a regular file
	}
	if err := ix.WriteIndexList(context.Background(), &buf, paths); err != nil {
		t.Fatalf("WriteIndexList: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "**addons/sale/models/sale.py**") {
		t.Error("listed file missing from index")
	}
	if strings.Contains(out, "debug.log") {
		t.Error("excluded file should be dropped from a restricted index")
	}
	if strings.Contains(out, "exist.py") {
		t.Error("missing file should be dropped from a restricted index")
	}
	if strings.Contains(out, "**addons/sale**") {
		t.Error("directories should not appear in a restricted index")
	}
}

func TestWriteSimpleList(t *testing.T) {
	root := fixtureRoot(t)
	ix := newIndexer(t, root)

	var buf bytes.Buffer
	if err := ix.WriteSimpleList(context.Background(), &buf, nil); err != nil {
		t.Fatalf("WriteSimpleList: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		seen[line] = true
	}

	for _, want := range []string{
		"README.md",
		"addons",
		"addons/sale",
		"addons/sale/models/sale.py",
		"addons/sale/static/src/js/widget.js",
	} {
		if !seen[want] {
			t.Errorf("simple list missing %q", want)
		}
	}
	if seen[".git"] || seen[".git/config"] || seen["debug.log"] {
		t.Error("excluded entries leaked into the simple list")
	}

	if !sortedStrings(lines) {
		t.Error("simple list should be sorted")
	}
}

func TestWriteSimpleList_InputList(t *testing.T) {
	root := fixtureRoot(t)
	ix := newIndexer(t, root)

	var buf bytes.Buffer
	paths := []string{"README.md", "debug.log", "gone.py", "addons/sale"}
	if err := ix.WriteSimpleList(context.Background(), &buf, paths); err != nil {
		t.Fatalf("WriteSimpleList: %v", err)
	}

	got := strings.TrimSpace(buf.String())
	want := "README.md\naddons/sale"
	if got != want {
		t.Errorf("restricted simple list = %q, want %q", got, want)
	}
}

func TestNew_BadRoot(t *testing.T) {
	filter, err := pathfilter.Load(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("pathfilter.Load: %v", err)
	}

	if _, err := New(filepath.Join(t.TempDir(), "missing"), filter); err == nil {
		t.Error("missing root should be rejected")
	}

	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if _, err := New(file, filter); err == nil {
		t.Error("file root should be rejected")
	}
}

func sortedStrings(lines []string) bool {
	for i := 1; i < len(lines); i++ {
		if lines[i-1] > lines[i] {
			return false
		}
	}
	return true
}
