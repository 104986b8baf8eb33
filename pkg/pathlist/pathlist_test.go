package pathlist

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "files.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing list file: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeList(t, "addons/sale/models/sale.py\n\n  addons/crm/__init__.py  \n\nREADME.md\n")

	paths, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []string{"addons/sale/models/sale.py", "addons/crm/__init__.py", "README.md"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("Read = %v, want %v", paths, want)
	}
}

func TestRead_EmptyFile(t *testing.T) {
	path := writeList(t, "\n\n   \n")

	paths, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("Read of blank file = %v, want empty", paths)
	}
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Read of missing file should error")
	}
}
