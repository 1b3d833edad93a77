package domain

import (
	"sort"
	"strings"
)

var extensionLanguages = map[string]string{
	".c":          "C",
	".cpp":        "C++",
	".cs":         "C#",
	".css":        "CSS",
	".dockerfile": "Docker",
	".env":        "Environment",
	".gitignore":  "Git",
	".go":         "Go",
	".html":       "HTML",
	".java":       "Java",
	".js":         "JavaScript",
	".json":       "JSON",
	".jsx":        "React",
	".kt":         "Kotlin",
	".less":       "Less",
	".md":         "Markdown",
	".php":        "PHP",
	".py":         "Python",
	".rb":         "Ruby",
	".rs":         "Rust",
	".scss":       "Sass",
	".sh":         "Shell",
	".sql":        "SQL",
	".swift":      "Swift",
	".ts":         "TypeScript",
	".tsx":        "React",
	".txt":        "Text",
	".xml":        "XML",
	".yaml":       "YAML",
	".yml":        "YAML",
}

// Well-known extensionless file names, keyed by lowercase name
var filenameLanguages = map[string]string{
	"dockerfile": "Dockerfile",
	"license":    "License",
	"makefile":   "Makefile",
	"readme":     "Readme",
}

// DetectLanguage classifies a file by extension, then by well-known name.
// Returns "" when unknown.
func DetectLanguage(extension, filename string) string {
	if lang, ok := extensionLanguages[strings.ToLower(extension)]; ok {
		return lang
	}
	if lang, ok := filenameLanguages[strings.ToLower(filename)]; ok {
		return lang
	}
	return ""
}

// LanguagesForExtensions maps a set of extensions to a sorted language set
func LanguagesForExtensions(extensions []string) []string {
	seen := make(map[string]bool)
	for _, ext := range extensions {
		if lang := DetectLanguage(ext, ""); lang != "" {
			seen[lang] = true
		}
	}

	languages := make([]string, 0, len(seen))
	for lang := range seen {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	return languages
}
