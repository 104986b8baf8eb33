package langmap

import "testing"

func TestForPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"models/sale_order.py", "python"},
		{"static/src/js/widget.js", "javascript"},
		{"static/src/components/list.xml", "xml"},
		{"static/src/scss/theme.scss", "scss"},
		{"views/templates.HTML", "html"},
		{"Makefile", "text"},
		{"setup.cfg", "ini"},
		{"README.md", "markdown"},
		{"tools/index.go", "go"},
		{"data/dump.sql", "sql"},
		{"archive.unknown-ext", "text"},
		{"noextension", "text"},
	}

	for _, tc := range cases {
		if got := ForPath(tc.path); got != tc.want {
			t.Errorf("ForPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
