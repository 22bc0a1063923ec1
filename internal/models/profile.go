package models

import "time"

// Profile is a named, switchable snapshot of the full settings structure,
// persisted at ~/.claude/profiles/{name}.json.
type Profile struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	IsDefault   bool           `json:"isDefault"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Settings    ClaudeSettings `json:"settings"`
}

// ProfileInfo is the summary entry kept in the profile index.
type ProfileInfo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfileIndex is the source of truth for which profiles exist and which is
// current, persisted at ~/.claude/profiles/profile-manager.json.
type ProfileIndex struct {
	CurrentProfile string        `json:"currentProfile"`
	Profiles       []ProfileInfo `json:"profiles"`
}

// Find returns the index entry for name, or nil if it is not listed.
func (idx *ProfileIndex) Find(name string) *ProfileInfo {
	for i := range idx.Profiles {
		if idx.Profiles[i].Name == name {
			return &idx.Profiles[i]
		}
	}
	return nil
}
