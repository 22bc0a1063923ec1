package services

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"semanticcode/internal/models"
)

// DefaultProfileName is the built-in profile every installation has. It can
// be reset but never deleted.
const DefaultProfileName = "default"

// ProfileService manages named settings snapshots under the profiles
// directory. The index file profile-manager.json is the source of truth for
// which profiles exist and which one is current.
type ProfileService struct {
	dir      string
	settings *SettingsService
}

// NewProfileService creates a service rooted at dir. The settings service
// supplies defaults when the built-in profile has to be synthesized.
func NewProfileService(dir string, settings *SettingsService) *ProfileService {
	return &ProfileService{dir: dir, settings: settings}
}

func (s *ProfileService) indexPath() string {
	return filepath.Join(s.dir, "profile-manager.json")
}

func (s *ProfileService) profilePath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// LoadIndex returns the profile index, creating one with the built-in default
// entry when none exists.
func (s *ProfileService) LoadIndex() *models.ProfileIndex {
	data, err := os.ReadFile(s.indexPath())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ [PROFILE] Failed to read index: %v", err)
		}
		idx := defaultIndex()
		s.SaveIndex(idx)
		return idx
	}

	var idx models.ProfileIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		log.Printf("⚠️ [PROFILE] Failed to parse index: %v", err)
		fresh := defaultIndex()
		s.SaveIndex(fresh)
		return fresh
	}
	return &idx
}

// SaveIndex persists the profile index.
func (s *ProfileService) SaveIndex(idx *models.ProfileIndex) bool {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		log.Printf("❌ [PROFILE] Failed to create profiles directory: %v", err)
		return false
	}
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		log.Printf("❌ [PROFILE] Failed to marshal index: %v", err)
		return false
	}
	if err := os.WriteFile(s.indexPath(), data, 0644); err != nil {
		log.Printf("❌ [PROFILE] Failed to write index: %v", err)
		return false
	}
	return true
}

// LoadProfile reads a profile by name. A missing default profile is
// synthesized from the default settings and persisted; any other missing
// name yields (nil, false).
func (s *ProfileService) LoadProfile(name string) (*models.Profile, bool) {
	data, err := os.ReadFile(s.profilePath(name))
	if err != nil {
		if os.IsNotExist(err) && name == DefaultProfileName {
			return s.createDefaultProfile()
		}
		if !os.IsNotExist(err) {
			log.Printf("⚠️ [PROFILE] Failed to read profile %s: %v", name, err)
		}
		return nil, false
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("⚠️ [PROFILE] Failed to parse profile %s: %v", name, err)
		return nil, false
	}
	return &profile, true
}

// SaveProfile writes the profile file, stamps UpdatedAt and upserts the
// index entry.
func (s *ProfileService) SaveProfile(profile *models.Profile) bool {
	if profile == nil || profile.Name == "" {
		return false
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		log.Printf("❌ [PROFILE] Failed to create profiles directory: %v", err)
		return false
	}

	profile.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		log.Printf("❌ [PROFILE] Failed to marshal profile %s: %v", profile.Name, err)
		return false
	}
	if err := os.WriteFile(s.profilePath(profile.Name), data, 0644); err != nil {
		log.Printf("❌ [PROFILE] Failed to write profile %s: %v", profile.Name, err)
		return false
	}

	idx := s.LoadIndex()
	if entry := idx.Find(profile.Name); entry != nil {
		entry.Description = profile.Description
		entry.IsDefault = profile.IsDefault
		entry.UpdatedAt = profile.UpdatedAt
	} else {
		idx.Profiles = append(idx.Profiles, models.ProfileInfo{
			Name:        profile.Name,
			Description: profile.Description,
			IsDefault:   profile.IsDefault,
			CreatedAt:   profile.CreatedAt,
			UpdatedAt:   profile.UpdatedAt,
		})
	}
	return s.SaveIndex(idx)
}

// Delete removes a profile and its index entry. The built-in default profile
// and names absent from the index are refused. When the deleted profile was
// current, current falls back to the default profile.
func (s *ProfileService) Delete(name string) bool {
	if name == DefaultProfileName {
		return false
	}

	idx := s.LoadIndex()
	entry := idx.Find(name)
	if entry == nil {
		return false
	}

	filtered := idx.Profiles[:0]
	for _, p := range idx.Profiles {
		if p.Name != name {
			filtered = append(filtered, p)
		}
	}
	idx.Profiles = filtered

	if idx.CurrentProfile == name {
		idx.CurrentProfile = DefaultProfileName
	}

	if err := os.Remove(s.profilePath(name)); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ [PROFILE] Failed to remove profile file %s: %v", name, err)
	}

	if !s.SaveIndex(idx) {
		return false
	}
	log.Printf("🗑️ [PROFILE] Deleted profile %s", name)
	return true
}

// List returns the index entries sorted by name.
func (s *ProfileService) List() []models.ProfileInfo {
	idx := s.LoadIndex()
	out := make([]models.ProfileInfo, len(idx.Profiles))
	copy(out, idx.Profiles)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Current returns the currently selected profile. When the current entry
// cannot be loaded, selection falls back to the default profile and the
// index is updated.
func (s *ProfileService) Current() (*models.Profile, bool) {
	idx := s.LoadIndex()
	if profile, ok := s.LoadProfile(idx.CurrentProfile); ok {
		return profile, true
	}

	log.Printf("⚠️ [PROFILE] Current profile %q unavailable, falling back to %s", idx.CurrentProfile, DefaultProfileName)
	idx.CurrentProfile = DefaultProfileName
	s.SaveIndex(idx)
	return s.LoadProfile(DefaultProfileName)
}

// SetCurrent switches the current profile. The name must exist in the index.
func (s *ProfileService) SetCurrent(name string) bool {
	idx := s.LoadIndex()
	if idx.Find(name) == nil {
		return false
	}
	idx.CurrentProfile = name
	return s.SaveIndex(idx)
}

// SetDefaultFlag marks one profile as the default, clearing the flag on all
// others. When current still points at the built-in default, current is
// retargeted to the newly flagged profile.
func (s *ProfileService) SetDefaultFlag(name string) bool {
	idx := s.LoadIndex()
	entry := idx.Find(name)
	if entry == nil {
		return false
	}

	for i := range idx.Profiles {
		idx.Profiles[i].IsDefault = false
	}
	entry.IsDefault = true

	if idx.CurrentProfile == DefaultProfileName {
		idx.CurrentProfile = name
	}
	return s.SaveIndex(idx)
}

// Create makes a new profile from the given settings and persists it.
func (s *ProfileService) Create(name, description string, settings models.ClaudeSettings) (*models.Profile, bool) {
	now := time.Now().UTC()
	profile := &models.Profile{
		Name:        name,
		Description: description,
		Settings:    settings,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !s.SaveProfile(profile) {
		return nil, false
	}
	return profile, true
}

// Duplicate copies an existing profile under a new name. The settings are
// deep-copied so the two profiles never share state.
func (s *ProfileService) Duplicate(sourceName, newName, description string) (*models.Profile, bool) {
	source, ok := s.LoadProfile(sourceName)
	if !ok {
		return nil, false
	}
	cloned := s.settings.Clone(&source.Settings)
	if cloned == nil {
		return nil, false
	}
	return s.Create(newName, description, *cloned)
}

func (s *ProfileService) createDefaultProfile() (*models.Profile, bool) {
	now := time.Now().UTC()
	profile := &models.Profile{
		Name:        DefaultProfileName,
		Description: "Default profile",
		IsDefault:   true,
		Settings:    *DefaultSettings(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !s.SaveProfile(profile) {
		return nil, false
	}
	return profile, true
}

func defaultIndex() *models.ProfileIndex {
	now := time.Now().UTC()
	return &models.ProfileIndex{
		CurrentProfile: DefaultProfileName,
		Profiles: []models.ProfileInfo{{
			Name:        DefaultProfileName,
			Description: "Default profile",
			IsDefault:   true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}},
	}
}
