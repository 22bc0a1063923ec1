package services

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"semanticcode/internal/models"
)

const (
	claudeCLI       = "claude"
	mcpProbeTimeout = 5 * time.Second
)

// McpService manages MCP server configurations. The local JSON file is the
// durable registry; changes are additionally synced to the claude CLI when it
// is on PATH. CLI failures never break the local configuration.
type McpService struct {
	path string
}

// NewMcpService creates a service for the MCP config file at path.
func NewMcpService(path string) *McpService {
	return &McpService{path: path}
}

// Load returns the local configuration, creating an empty one when the file
// is missing or unreadable.
func (s *McpService) Load() *models.McpConfiguration {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ [MCP] Failed to read %s: %v", s.path, err)
		}
		config := emptyMcpConfig()
		s.Save(config)
		return config
	}

	var config models.McpConfiguration
	if err := json.Unmarshal(data, &config); err != nil {
		log.Printf("⚠️ [MCP] Failed to parse %s: %v", s.path, err)
		return emptyMcpConfig()
	}
	if config.McpServers == nil {
		config.McpServers = make(map[string]*models.McpServer)
	}
	return &config
}

// Save persists the local configuration.
func (s *McpService) Save(config *models.McpConfiguration) bool {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		log.Printf("❌ [MCP] Failed to create config directory: %v", err)
		return false
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		log.Printf("❌ [MCP] Failed to marshal configuration: %v", err)
		return false
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		log.Printf("❌ [MCP] Failed to write %s: %v", s.path, err)
		return false
	}
	return true
}

// Add registers a server locally and best-effort syncs it to the claude CLI.
func (s *McpService) Add(ctx context.Context, name string, server *models.McpServer) bool {
	config := s.Load()
	config.McpServers[name] = server
	if !s.Save(config) {
		return false
	}
	s.syncAdd(ctx, name, server)
	return true
}

// Remove deletes a server locally and best-effort removes it from the claude
// CLI.
func (s *McpService) Remove(ctx context.Context, name string) bool {
	config := s.Load()
	if _, ok := config.McpServers[name]; !ok {
		return false
	}
	delete(config.McpServers, name)
	if !s.Save(config) {
		return false
	}
	s.syncRemove(ctx, name)
	return true
}

// Update replaces an existing server's configuration. Unknown names are
// refused.
func (s *McpService) Update(name string, server *models.McpServer) bool {
	config := s.Load()
	if _, ok := config.McpServers[name]; !ok {
		return false
	}
	config.McpServers[name] = server
	return s.Save(config)
}

// Enable toggles a server's disabled flag.
func (s *McpService) Enable(name string, enabled bool) bool {
	config := s.Load()
	server, ok := config.McpServers[name]
	if !ok {
		return false
	}
	disabled := !enabled
	server.Disabled = &disabled
	return s.Save(config)
}

// SyncAll pushes every locally configured server to the claude CLI.
func (s *McpService) SyncAll(ctx context.Context) {
	config := s.Load()
	for name, server := range config.McpServers {
		s.syncAdd(ctx, name, server)
	}
}

// CLIAvailable reports whether the claude CLI responds on PATH.
func (s *McpService) CLIAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, mcpProbeTimeout)
	defer cancel()
	return exec.CommandContext(ctx, claudeCLI, "--version").Run() == nil
}

// Statuses returns the state of every known server, preferring the claude
// CLI's view and falling back to the local registry. Results are sorted by
// name.
func (s *McpService) Statuses(ctx context.Context) []models.McpServerStatus {
	servers := s.serversFromCLI(ctx)
	if servers == nil {
		servers = s.Load().McpServers
	}

	statuses := make([]models.McpServerStatus, 0, len(servers))
	for name, server := range servers {
		statuses = append(statuses, models.McpServerStatus{
			Name:          name,
			IsEnabled:     server.IsEnabled(),
			IsRunning:     probeServer(ctx, server),
			Configuration: server,
		})
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses
}

// ValidateServer checks a server definition before it is registered.
func (s *McpService) ValidateServer(name string, server *models.McpServer) *models.ValidationResult {
	result := &models.ValidationResult{}

	if strings.TrimSpace(name) == "" {
		result.AddError("server name is required")
	}
	if server == nil || strings.TrimSpace(server.Command) == "" {
		result.AddError("command is required")
		return result
	}

	if _, err := os.Stat(server.Command); err != nil {
		if _, err := exec.LookPath(server.Command); err != nil {
			result.AddWarning("command not found on PATH: " + server.Command)
		}
	}
	for _, arg := range server.Args {
		if strings.TrimSpace(arg) == "" {
			result.AddWarning("argument list contains a blank value")
			break
		}
	}
	return result
}

// Templates returns ready-made configurations for common MCP servers.
func Templates() []models.McpServerTemplate {
	return []models.McpServerTemplate{
		{
			Name:        "GitHub MCP Server",
			Description: "Work with GitHub repositories",
			Server: &models.McpServer{
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-github"},
				Env:     map[string]string{"GITHUB_PERSONAL_ACCESS_TOKEN": ""},
			},
		},
		{
			Name:        "Filesystem MCP Server",
			Description: "File system operations",
			Server: &models.McpServer{
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-filesystem", "/path/to/allowed/files"},
			},
		},
		{
			Name:        "SQLite MCP Server",
			Description: "SQLite database operations",
			Server: &models.McpServer{
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-sqlite", "/path/to/database.db"},
			},
		},
		{
			Name:        "PostgreSQL MCP Server",
			Description: "PostgreSQL database operations",
			Server: &models.McpServer{
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-postgres"},
				Env:     map[string]string{"POSTGRES_CONNECTION_STRING": ""},
			},
		},
		{
			Name:        "Fetch MCP Server",
			Description: "HTTP requests",
			Server: &models.McpServer{
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-fetch"},
			},
		},
		{
			Name:        "Brave Search MCP Server",
			Description: "Brave search engine queries",
			Server: &models.McpServer{
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-brave-search"},
				Env:     map[string]string{"BRAVE_API_KEY": ""},
			},
		},
	}
}

func (s *McpService) syncAdd(ctx context.Context, name string, server *models.McpServer) {
	payload, err := json.Marshal(server)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, mcpProbeTimeout)
	defer cancel()
	if out, err := exec.CommandContext(ctx, claudeCLI, "mcp", "add-json", name, string(payload)).CombinedOutput(); err != nil {
		log.Printf("⚠️ [MCP] CLI add %s failed: %v (%s)", name, err, strings.TrimSpace(string(out)))
	}
}

func (s *McpService) syncRemove(ctx context.Context, name string) {
	ctx, cancel := context.WithTimeout(ctx, mcpProbeTimeout)
	defer cancel()
	if out, err := exec.CommandContext(ctx, claudeCLI, "mcp", "remove", name).CombinedOutput(); err != nil {
		log.Printf("⚠️ [MCP] CLI remove %s failed: %v (%s)", name, err, strings.TrimSpace(string(out)))
	}
}

// serversFromCLI lists servers via the claude CLI, or nil when the CLI is
// unavailable or its output cannot be used.
func (s *McpService) serversFromCLI(ctx context.Context) map[string]*models.McpServer {
	if !s.CLIAvailable(ctx) {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, mcpProbeTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, claudeCLI, "mcp", "list").Output()
	if err != nil {
		return nil
	}
	servers := ParseMcpList(string(out))
	if len(servers) == 0 {
		return nil
	}
	return servers
}

// ParseMcpList parses claude CLI server listings. JSON output is decoded
// directly; otherwise an indented text layout is assumed, where an unindented
// "name:" line starts a server and indented "key: value" lines fill it in.
func ParseMcpList(output string) map[string]*models.McpServer {
	servers := make(map[string]*models.McpServer)
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return servers
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var config models.McpConfiguration
		if err := json.Unmarshal([]byte(trimmed), &config); err == nil && config.McpServers != nil {
			return config.McpServers
		}
		return servers
	}

	var current *models.McpServer
	var currentName string
	for _, line := range strings.Split(output, "\n") {
		text := strings.TrimSpace(line)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		indented := strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
		if !indented && strings.Contains(text, ":") {
			if current != nil && currentName != "" {
				servers[currentName] = current
			}
			currentName = strings.TrimSpace(strings.SplitN(text, ":", 2)[0])
			current = &models.McpServer{}
			continue
		}

		if current == nil || !strings.Contains(text, ":") {
			continue
		}
		parts := strings.SplitN(text, ":", 2)
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		switch key {
		case "command":
			current.Command = value
		case "args":
			if value != "" {
				current.Args = strings.Fields(value)
			}
		case "disabled":
			if value == "true" || value == "false" {
				disabled := value == "true"
				current.Disabled = &disabled
			}
		case "env":
			if kv := strings.SplitN(value, "=", 2); len(kv) == 2 {
				if current.Env == nil {
					current.Env = make(map[string]string)
				}
				current.Env[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
			}
		}
	}
	if current != nil && currentName != "" {
		servers[currentName] = current
	}
	return servers
}

// probeServer launches the server command and reports whether it exits
// cleanly within the probe window.
func probeServer(ctx context.Context, server *models.McpServer) bool {
	if server == nil || server.Command == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, mcpProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, server.Command, server.Args...)
	cmd.Env = os.Environ()
	for k, v := range server.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	return cmd.Run() == nil
}

func emptyMcpConfig() *models.McpConfiguration {
	return &models.McpConfiguration{
		McpServers: make(map[string]*models.McpServer),
	}
}
