package config

import (
	"path/filepath"
	"strings"
)

// DefaultLanguage is used for files whose extension is not recognised.
const DefaultLanguage = "python"

var languagesByExt = map[string]string{
	".py":  "python",
	".js":  "javascript",
	".go":  "go",
	".cs":  "csharp",
	".c":   "c",
	".cpp": "cpp",
	".rs":  "rust",
}

// DetectLanguage detects programming language from a solution file name
func DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languagesByExt[ext]; ok {
		return lang
	}
	return DefaultLanguage
}
