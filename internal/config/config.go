package config

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// DefaultHubURL is the remote agent catalog endpoint.
// Override at build time with: go build -ldflags "-X semanticcode/internal/config.DefaultHubURL=..."
var DefaultHubURL = "https://raw.githubusercontent.com/AIDotNet/SemanticCode-Hubs/refs/heads/main/agents.json"

// DefaultReleasesURL is the GitHub releases endpoint used for update checks.
var DefaultReleasesURL = "https://api.github.com/repos/AIDotNet/SemanticCode/releases/latest"

// Config holds all application configuration
type Config struct {
	ClaudeDir   string // Base directory for all Claude Code state (~/.claude)
	HubURL      string // Remote agent catalog JSON endpoint
	ReleasesURL string // Release metadata endpoint for update checks

	HTTPTimeout time.Duration // Timeout applied to catalog and download requests
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	claudeDir := os.Getenv("CLAUDE_CONFIG_DIR")
	if claudeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// Without a home directory there is nowhere sane to put state.
			log.Fatalf("❌ Failed to resolve home directory: %v", err)
		}
		claudeDir = filepath.Join(home, ".claude")
	}

	return &Config{
		ClaudeDir:   claudeDir,
		HubURL:      getEnv("SEMANTICCODE_HUB_URL", DefaultHubURL),
		ReleasesURL: getEnv("SEMANTICCODE_RELEASES_URL", DefaultReleasesURL),
		HTTPTimeout: getDurationEnv("SEMANTICCODE_HTTP_TIMEOUT", 15*time.Second),
	}
}

// AgentsDir returns the directory holding agent definition files.
func (c *Config) AgentsDir() string {
	return filepath.Join(c.ClaudeDir, "agents")
}

// SettingsPath returns the path of the primary settings document.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.ClaudeDir, "settings.json")
}

// ProfilesDir returns the directory holding profile documents and the profile index.
func (c *Config) ProfilesDir() string {
	return filepath.Join(c.ClaudeDir, "profiles")
}

// HubCachePath returns the path of the on-disk catalog snapshot.
func (c *Config) HubCachePath() string {
	return filepath.Join(c.ClaudeDir, "agent_hub_cache.json")
}

// McpConfigPath returns the path of the MCP server configuration document.
func (c *Config) McpConfigPath() string {
	return filepath.Join(c.ClaudeDir, "claude_desktop_config.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
