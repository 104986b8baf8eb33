package langmap

import (
	"path/filepath"
	"strings"
)

// byExtension maps lowercase file extensions to the language tag used
// for markdown code fences.
var byExtension = map[string]string{
	// Python
	".py":  "python",
	".pyi": "python",
	".pyx": "python",
	".pxd": "python",
	".pxi": "python",
	// JavaScript/TypeScript
	".js":  "javascript",
	".jsx": "jsx",
	".ts":  "typescript",
	".tsx": "tsx",
	// Web
	".html": "html",
	".htm":  "html",
	".css":  "css",
	".scss": "scss",
	".sass": "sass",
	".less": "less",
	// XML
	".xml":   "xml",
	".xhtml": "xml",
	// Shell
	".sh":   "bash",
	".bash": "bash",
	".zsh":  "bash",
	// Configuration
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
	".ini":  "ini",
	".cfg":  "ini",
	// Documentation
	".md":  "markdown",
	".rst": "rst",
	".txt": "text",
	// SQL
	".sql": "sql",
	// C/C++
	".c":   "c",
	".cpp": "cpp",
	".h":   "cpp",
	".hpp": "cpp",
	// Java
	".java": "java",
	// Ruby
	".rb":  "ruby",
	".rbw": "ruby",
	// PHP
	".php":   "php",
	".phtml": "php",
	// Go
	".go": "go",
	// Rust
	".rs": "rust",
	// Swift
	".swift": "swift",
	// Kotlin
	".kt":  "kotlin",
	".kts": "kotlin",
}

// ForPath returns the fence language for the given file path based on
// its extension. Unknown extensions fall back to "text".
func ForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := byExtension[ext]; ok {
		return lang
	}
	return "text"
}
