package models

import "time"

// HubCatalog is the remote agent catalog payload.
type HubCatalog struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Agents      []HubAgent `json:"agents"`
}

// HubAgent is one installable agent in the catalog.
type HubAgent struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	LastUpdated string   `json:"lastUpdated"`
	PromptURL   string   `json:"promptUrl"`
	Tools       []string `json:"tools"`

	// Installed is derived from the agents directory on every read and is
	// deliberately excluded from the serialized cache payload: a persisted
	// flag could disagree with the file system.
	Installed bool `json:"-"`
}

// HubCacheFile is the on-disk catalog snapshot at ~/.claude/agent_hub_cache.json.
type HubCacheFile struct {
	Timestamp time.Time   `json:"timestamp"`
	Data      *HubCatalog `json:"data"`
}
