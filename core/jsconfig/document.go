// Package jsconfig builds and writes the jsconfig.json document that
// teaches the editor to resolve "@module" imports to addon source
// directories.
package jsconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ksin-odoo/Tools/core/aliasmap"
)

// New builds the document for the given alias map. Each module name
// becomes an "@<name>/*" path alias targeting its static/src directory,
// and each scanned root contributes an include glob. Extra roots must
// already be relative to the directory the document will be written to.
func New(aliases aliasmap.Map, extraRoots []string) Document {
	paths := make(map[string][]string, len(aliases))
	for name, target := range aliases {
		paths["@"+name+"/*"] = []string{target + "/*"}
	}

	include := []string{
		aliasmap.CommunityRoot + "/**/*",
		aliasmap.EnterpriseRoot + "/**/*",
	}
	for _, root := range extraRoots {
		include = append(include, filepath.ToSlash(root)+"/**/*")
	}

	return Document{
		CompilerOptions: CompilerOptions{BaseURL: ".", Paths: paths},
		Include:         include,
		Exclude:         []string{"node_modules"},
	}
}

// Encode renders the document as indented JSON. Map keys are emitted in
// sorted order, so identical alias maps produce byte-identical output.
func (d Document) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode jsconfig: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile encodes the document and writes it to path. A write failure
// is fatal to the run; there is no partial or retry behavior.
func (d Document) WriteFile(path string) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
