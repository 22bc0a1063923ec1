package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"semanticcode/internal/models"
)

const maxRecommendedTokens = 200000

// SettingsService reads and writes the settings.json document.
type SettingsService struct {
	path string
}

// NewSettingsService creates a service for the settings file at path.
func NewSettingsService(path string) *SettingsService {
	return &SettingsService{path: path}
}

// Path returns the settings file location.
func (s *SettingsService) Path() string {
	return s.path
}

// loadOutcome distinguishes where a Load result came from.
type loadOutcome int

const (
	loadedExisting loadOutcome = iota
	createdDefault
)

// Load returns the current settings. A missing or unreadable file yields a
// fresh default document, which is also written to disk so later reads find
// it.
func (s *SettingsService) Load() *models.ClaudeSettings {
	settings, _ := s.load()
	return settings
}

func (s *SettingsService) load() (*models.ClaudeSettings, loadOutcome) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ [SETTINGS] Failed to read %s: %v", s.path, err)
		}
		settings := DefaultSettings()
		s.Save(settings)
		return settings, createdDefault
	}

	var settings models.ClaudeSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("⚠️ [SETTINGS] Failed to parse %s: %v", s.path, err)
		fresh := DefaultSettings()
		s.Save(fresh)
		return fresh, createdDefault
	}
	return &settings, loadedExisting
}

// Save writes settings atomically: a temp file in the same directory is
// renamed over the target so readers never see a partial document.
func (s *SettingsService) Save(settings *models.ClaudeSettings) bool {
	if settings == nil {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		log.Printf("❌ [SETTINGS] Failed to create config directory: %v", err)
		return false
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		log.Printf("❌ [SETTINGS] Failed to marshal settings: %v", err)
		return false
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		log.Printf("❌ [SETTINGS] Failed to write %s: %v", tmp, err)
		return false
	}
	if err := os.Rename(tmp, s.path); err != nil {
		log.Printf("❌ [SETTINGS] Failed to replace %s: %v", s.path, err)
		os.Remove(tmp)
		return false
	}
	return true
}

// Clone returns a deep copy of settings via JSON round trip.
func (s *SettingsService) Clone(settings *models.ClaudeSettings) *models.ClaudeSettings {
	if settings == nil {
		return nil
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return nil
	}
	var out models.ClaudeSettings
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return &out
}

// Validate checks a settings document and collects every problem found.
// Errors mark settings Claude Code cannot run with; warnings mark values that
// are suspicious but usable.
func (s *SettingsService) Validate(settings *models.ClaudeSettings) *models.ValidationResult {
	result := &models.ValidationResult{}
	if settings == nil {
		result.AddError("settings document is missing")
		return result
	}
	env := settings.Env

	if strings.TrimSpace(env.AnthropicAuthToken) == "" {
		result.AddError("API token is required")
	} else if !strings.HasPrefix(env.AnthropicAuthToken, "sk-") {
		result.AddWarning("API token does not start with 'sk-', it may be invalid")
	}

	if strings.TrimSpace(env.AnthropicModel) == "" {
		result.AddError("primary model is required")
	}
	if strings.TrimSpace(env.AnthropicSmallFastModel) == "" {
		result.AddWarning("small fast model is not set, the primary model will be used for background tasks")
	}

	if env.AnthropicMaxTokens != nil {
		if *env.AnthropicMaxTokens <= 0 {
			result.AddError("max tokens must be greater than zero")
		} else if *env.AnthropicMaxTokens > maxRecommendedTokens {
			result.AddWarning(fmt.Sprintf("max tokens %d exceeds the recommended limit of %d", *env.AnthropicMaxTokens, maxRecommendedTokens))
		}
	}

	if env.AnthropicTemperature != nil {
		if *env.AnthropicTemperature < 0 || *env.AnthropicTemperature > 2 {
			result.AddError("temperature must be between 0 and 2")
		}
	}

	if env.AnthropicBaseURL != "" {
		u, err := url.Parse(env.AnthropicBaseURL)
		if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
			result.AddError("base URL must be an absolute http or https URL")
		}
	}

	if env.ClaudeCodeMaxContextTokens != nil && *env.ClaudeCodeMaxContextTokens <= 0 {
		result.AddError("max context tokens must be greater than zero")
	}

	if env.ClaudeCodeMemoryPath != "" {
		if strings.ContainsRune(env.ClaudeCodeMemoryPath, 0) {
			result.AddError("memory path contains invalid characters")
		} else if parent := filepath.Dir(env.ClaudeCodeMemoryPath); parent != "." {
			if _, err := os.Stat(parent); err != nil {
				result.AddWarning(fmt.Sprintf("memory path parent directory does not exist: %s", parent))
			}
		}
	}

	return result
}

// DefaultSettings returns the document written when none exists yet.
func DefaultSettings() *models.ClaudeSettings {
	return &models.ClaudeSettings{
		Env: models.EnvironmentSettings{
			AnthropicModel:          "claude-sonnet-4-20250514",
			AnthropicSmallFastModel: "claude-3-5-haiku-20241022",
		},
	}
}

// AvailableModels lists the model names offered for the primary model.
func AvailableModels() []string {
	return []string{
		"claude-sonnet-4-20250514",
		"claude-3-5-sonnet-20241022",
		"claude-3-5-haiku-20241022",
		"claude-3-opus-20240229",
		"claude-3-sonnet-20240229",
		"claude-3-haiku-20240307",
		"kimi-k2-0711-preview",
	}
}

// AvailableSmallFastModels lists the model names offered for background tasks.
func AvailableSmallFastModels() []string {
	return []string{
		"claude-3-5-haiku-20241022",
		"claude-3-haiku-20240307",
	}
}
