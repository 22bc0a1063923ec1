package models

// McpConfiguration is the local MCP server registry persisted at
// ~/.claude/claude_desktop_config.json.
type McpConfiguration struct {
	McpServers map[string]*McpServer `json:"mcpServers"`
}

// McpServer describes how one MCP server is launched.
type McpServer struct {
	Command     string            `json:"command,omitempty"`
	Args        []string          `json:"args,omitempty"`
	Env         map[string]string `json:"env,omitempty"`
	Disabled    *bool             `json:"disabled,omitempty"`
	AlwaysAllow []string          `json:"alwaysAllow,omitempty"`
}

// IsEnabled reports whether the server is not explicitly disabled.
func (s *McpServer) IsEnabled() bool {
	return s.Disabled == nil || !*s.Disabled
}

// McpServerStatus is the probed runtime state of one configured server.
type McpServerStatus struct {
	Name          string     `json:"name"`
	IsRunning     bool       `json:"isRunning"`
	IsEnabled     bool       `json:"isEnabled"`
	ErrorMessage  string     `json:"errorMessage,omitempty"`
	Configuration *McpServer `json:"configuration"`
}

// McpServerTemplate is a ready-made server configuration offered to users.
type McpServerTemplate struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Server      *McpServer `json:"server"`
}
