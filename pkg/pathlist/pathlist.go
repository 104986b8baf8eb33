package pathlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Read parses a line-delimited path list file and returns the paths in
// file order. Leading and trailing whitespace is trimmed from each line
// and blank lines are dropped.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no path list found at %s", path)
		}
		return nil, fmt.Errorf("failed to open path list: %w", err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read path list: %w", err)
	}

	return paths, nil
}
