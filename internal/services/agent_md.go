package services

import (
	"strings"

	"semanticcode/internal/frontmatter"
	"semanticcode/internal/models"
)

// ParseAgentFile turns a raw agent document into an Agent. A document with no
// name key is not a valid agent definition and yields (nil, false).
func ParseAgentFile(fileName, content string) (*models.Agent, bool) {
	fm := frontmatter.Parse(content)

	name, ok := fm.Get("name")
	if !ok || strings.TrimSpace(name) == "" {
		return nil, false
	}

	agent := &models.Agent{
		Name:        strings.TrimSpace(name),
		Description: fm.GetOr("description", ""),
		Color:       fm.GetOr("color", "default"),
		FileName:    fileName,
		Content:     fm.GetOr(frontmatter.MainContentKey, ""),
		FrontMatter: fm,
	}
	return agent, true
}

// SerializeAgent renders an Agent back to document form. The known keys come
// first, extra front-matter keys follow in their original order, and the body
// goes after the closing delimiter.
func SerializeAgent(agent *models.Agent) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	writeKey(&sb, "name", agent.Name)
	writeKey(&sb, "description", agent.Description)
	writeKey(&sb, "color", agent.Color)
	if agent.FrontMatter != nil {
		for _, key := range agent.FrontMatter.Keys() {
			switch key {
			case "name", "description", "color",
				frontmatter.PreContentKey, frontmatter.MainContentKey:
				continue
			}
			value, _ := agent.FrontMatter.Get(key)
			writeKey(&sb, key, value)
		}
	}
	sb.WriteString("---\n")
	if agent.Content != "" {
		sb.WriteString("\n")
		sb.WriteString(agent.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

// writeKey emits one front-matter entry, indenting continuation lines of a
// multi-line value so a re-parse folds them back into the same key.
func writeKey(sb *strings.Builder, key, value string) {
	lines := strings.Split(value, "\n")
	sb.WriteString(key)
	sb.WriteString(": ")
	sb.WriteString(lines[0])
	sb.WriteString("\n")
	for _, line := range lines[1:] {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
