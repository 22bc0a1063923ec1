package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadHonorsConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLAUDE_CONFIG_DIR", dir)

	cfg := Load()
	if cfg.ClaudeDir != dir {
		t.Errorf("ClaudeDir = %q, want %q", cfg.ClaudeDir, dir)
	}
	if cfg.AgentsDir() != filepath.Join(dir, "agents") {
		t.Errorf("AgentsDir = %q", cfg.AgentsDir())
	}
	if cfg.SettingsPath() != filepath.Join(dir, "settings.json") {
		t.Errorf("SettingsPath = %q", cfg.SettingsPath())
	}
	if cfg.ProfilesDir() != filepath.Join(dir, "profiles") {
		t.Errorf("ProfilesDir = %q", cfg.ProfilesDir())
	}
	if cfg.HubCachePath() != filepath.Join(dir, "agent_hub_cache.json") {
		t.Errorf("HubCachePath = %q", cfg.HubCachePath())
	}
	if cfg.McpConfigPath() != filepath.Join(dir, "claude_desktop_config.json") {
		t.Errorf("McpConfigPath = %q", cfg.McpConfigPath())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CLAUDE_CONFIG_DIR", t.TempDir())
	t.Setenv("SEMANTICCODE_HUB_URL", "https://example.com/agents.json")
	t.Setenv("SEMANTICCODE_HTTP_TIMEOUT", "3s")

	cfg := Load()
	if cfg.HubURL != "https://example.com/agents.json" {
		t.Errorf("HubURL = %q", cfg.HubURL)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLAUDE_CONFIG_DIR", t.TempDir())
	t.Setenv("SEMANTICCODE_HUB_URL", "")
	t.Setenv("SEMANTICCODE_HTTP_TIMEOUT", "not-a-duration")

	cfg := Load()
	if cfg.HubURL != DefaultHubURL {
		t.Errorf("HubURL = %q", cfg.HubURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want default", cfg.HTTPTimeout)
	}
}
