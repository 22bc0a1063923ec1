package models

// ClaudeSettings is the primary settings document persisted at
// ~/.claude/settings.json. Field names match the file layout Claude Code
// reads, so this struct round-trips the file byte-compatibly.
type ClaudeSettings struct {
	Env    EnvironmentSettings `json:"env"`
	Editor *EditorSettings     `json:"editor,omitempty"`
	Tools  *ToolsSettings      `json:"tools,omitempty"`
	Memory *MemorySettings     `json:"memory,omitempty"`
	UI     *UISettings         `json:"ui,omitempty"`
}

// EnvironmentSettings holds the environment variables Claude Code picks up.
// Numeric and boolean fields are pointers: nil means "not set", which is a
// valid state distinct from zero.
type EnvironmentSettings struct {
	AnthropicAuthToken         string   `json:"ANTHROPIC_AUTH_TOKEN,omitempty"`
	AnthropicBaseURL           string   `json:"ANTHROPIC_BASE_URL,omitempty"`
	AnthropicModel             string   `json:"ANTHROPIC_MODEL,omitempty"`
	AnthropicSmallFastModel    string   `json:"ANTHROPIC_SMALL_FAST_MODEL,omitempty"`
	AnthropicMaxTokens         *int     `json:"ANTHROPIC_MAX_TOKENS,omitempty"`
	AnthropicTemperature       *float64 `json:"ANTHROPIC_TEMPERATURE,omitempty"`
	ClaudeCodeDebug            *bool    `json:"CLAUDE_CODE_DEBUG,omitempty"`
	ClaudeCodeMaxContextTokens *int     `json:"CLAUDE_CODE_MAX_CONTEXT_TOKENS,omitempty"`
	ClaudeCodeMemoryPath       string   `json:"CLAUDE_CODE_MEMORY_PATH,omitempty"`
	ClaudeCodeToolsDisabled    string   `json:"CLAUDE_CODE_TOOLS_DISABLED,omitempty"`
}

// EditorSettings configures editor behavior.
type EditorSettings struct {
	AutoSave *bool   `json:"auto_save,omitempty"`
	WordWrap *bool   `json:"word_wrap,omitempty"`
	FontSize *int    `json:"font_size,omitempty"`
	Theme    *string `json:"theme,omitempty"`
}

// ToolsSettings configures which tools are enabled and their limits.
type ToolsSettings struct {
	Enabled     []string `json:"enabled,omitempty"`
	Disabled    []string `json:"disabled,omitempty"`
	BashTimeout *int     `json:"bash_timeout,omitempty"`
	MaxFileSize *int     `json:"max_file_size,omitempty"`
}

// MemorySettings configures the memory subsystem.
type MemorySettings struct {
	Enabled     *bool `json:"enabled,omitempty"`
	MaxEntries  *int  `json:"max_entries,omitempty"`
	AutoCleanup *bool `json:"auto_cleanup,omitempty"`
}

// UISettings configures presentation preferences.
type UISettings struct {
	Language      *string `json:"language,omitempty"`
	Theme         *string `json:"theme,omitempty"`
	AutoStart     *bool   `json:"auto_start,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
}
