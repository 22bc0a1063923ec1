package models

import "semanticcode/internal/frontmatter"

// Agent represents a custom agent definition parsed from a .md file
// in the agents directory.
type Agent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	FileName    string `json:"fileName"`
	FilePath    string `json:"filePath"`

	// Content is the document body after the closing front-matter delimiter.
	Content string `json:"content"`

	// FrontMatter keeps every metadata key in insertion order, including the
	// reserved pre/post-content keys.
	FrontMatter *frontmatter.FrontMatter `json:"-"`
}
