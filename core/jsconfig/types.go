package jsconfig

// CompilerOptions holds the path-resolution settings the editor reads.
type CompilerOptions struct {
	BaseURL string              `json:"baseUrl"`
	Paths   map[string][]string `json:"paths"`
}

// Document is the jsconfig.json envelope consumed by the editor.
type Document struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}
