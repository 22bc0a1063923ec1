package services

import (
	"path/filepath"
	"testing"

	"semanticcode/internal/models"
)

func newProfileService(t *testing.T) *ProfileService {
	t.Helper()
	base := t.TempDir()
	settings := NewSettingsService(filepath.Join(base, "settings.json"))
	return NewProfileService(filepath.Join(base, "profiles"), settings)
}

func TestProfileIndexCreatedWithDefault(t *testing.T) {
	svc := newProfileService(t)

	idx := svc.LoadIndex()
	if idx.CurrentProfile != DefaultProfileName {
		t.Errorf("CurrentProfile = %q", idx.CurrentProfile)
	}
	entry := idx.Find(DefaultProfileName)
	if entry == nil {
		t.Fatal("default entry missing")
	}
	if !entry.IsDefault {
		t.Error("default entry not flagged")
	}
}

func TestLoadProfileSynthesizesDefault(t *testing.T) {
	svc := newProfileService(t)

	profile, ok := svc.LoadProfile(DefaultProfileName)
	if !ok {
		t.Fatal("default profile not synthesized")
	}
	if profile.Settings.Env.AnthropicModel == "" {
		t.Error("synthesized default missing settings")
	}

	// Second load reads the persisted file.
	again, ok := svc.LoadProfile(DefaultProfileName)
	if !ok || again.Name != DefaultProfileName {
		t.Error("persisted default not loadable")
	}
}

func TestLoadProfileMissing(t *testing.T) {
	svc := newProfileService(t)
	if _, ok := svc.LoadProfile("nope"); ok {
		t.Error("missing profile should not load")
	}
}

func TestSaveProfileUpsertsIndex(t *testing.T) {
	svc := newProfileService(t)

	profile := &models.Profile{Name: "work", Description: "Work account"}
	if !svc.SaveProfile(profile) {
		t.Fatal("save failed")
	}
	if profile.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped")
	}

	idx := svc.LoadIndex()
	entry := idx.Find("work")
	if entry == nil {
		t.Fatal("index entry missing after save")
	}
	if entry.Description != "Work account" {
		t.Errorf("Description = %q", entry.Description)
	}

	profile.Description = "updated"
	svc.SaveProfile(profile)
	idx = svc.LoadIndex()
	if got := idx.Find("work").Description; got != "updated" {
		t.Errorf("Description after update = %q", got)
	}
	count := 0
	for _, p := range idx.Profiles {
		if p.Name == "work" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate index entries: %d", count)
	}
}

func TestDeleteProfile(t *testing.T) {
	svc := newProfileService(t)
	svc.Create("temp", "", models.ClaudeSettings{})
	svc.SetCurrent("temp")

	if !svc.Delete("temp") {
		t.Fatal("delete failed")
	}
	idx := svc.LoadIndex()
	if idx.Find("temp") != nil {
		t.Error("index entry survived delete")
	}
	if idx.CurrentProfile != DefaultProfileName {
		t.Errorf("current = %q, want fallback to default", idx.CurrentProfile)
	}
}

func TestDeleteRefusesDefault(t *testing.T) {
	svc := newProfileService(t)
	if svc.Delete(DefaultProfileName) {
		t.Error("default profile must not be deletable")
	}
	if svc.Delete("never-existed") {
		t.Error("unknown profile delete should report false")
	}
}

func TestListSorted(t *testing.T) {
	svc := newProfileService(t)
	svc.Create("zeta", "", models.ClaudeSettings{})
	svc.Create("alpha", "", models.ClaudeSettings{})

	list := svc.List()
	if len(list) != 3 {
		t.Fatalf("got %d profiles", len(list))
	}
	if list[0].Name != "alpha" || list[1].Name != DefaultProfileName || list[2].Name != "zeta" {
		t.Errorf("order = %s, %s, %s", list[0].Name, list[1].Name, list[2].Name)
	}
}

func TestSetCurrent(t *testing.T) {
	svc := newProfileService(t)
	svc.Create("work", "", models.ClaudeSettings{})

	if !svc.SetCurrent("work") {
		t.Fatal("SetCurrent failed")
	}
	if svc.SetCurrent("ghost") {
		t.Error("SetCurrent accepted unknown name")
	}

	current, ok := svc.Current()
	if !ok || current.Name != "work" {
		t.Errorf("current = %+v", current)
	}
}

func TestCurrentFallsBackWhenFileMissing(t *testing.T) {
	svc := newProfileService(t)
	// Index knows "ghost" but there is no profile file behind it.
	idx := svc.LoadIndex()
	idx.Profiles = append(idx.Profiles, models.ProfileInfo{Name: "ghost"})
	idx.CurrentProfile = "ghost"
	svc.SaveIndex(idx)

	current, ok := svc.Current()
	if !ok || current.Name != DefaultProfileName {
		t.Errorf("current = %+v, want default fallback", current)
	}
	if svc.LoadIndex().CurrentProfile != DefaultProfileName {
		t.Error("index not retargeted to default")
	}
}

func TestSetDefaultFlag(t *testing.T) {
	svc := newProfileService(t)
	svc.Create("work", "", models.ClaudeSettings{})
	svc.Create("home", "", models.ClaudeSettings{})

	if !svc.SetDefaultFlag("work") {
		t.Fatal("SetDefaultFlag failed")
	}

	idx := svc.LoadIndex()
	for _, p := range idx.Profiles {
		want := p.Name == "work"
		if p.IsDefault != want {
			t.Errorf("%s IsDefault = %v", p.Name, p.IsDefault)
		}
	}
	// Current pointed at the built-in default, so it follows the new flag.
	if idx.CurrentProfile != "work" {
		t.Errorf("current = %q, want work", idx.CurrentProfile)
	}

	// With current now elsewhere, flagging another profile leaves it alone.
	svc.SetDefaultFlag("home")
	if got := svc.LoadIndex().CurrentProfile; got != "work" {
		t.Errorf("current = %q, want unchanged", got)
	}
}

func TestDuplicateDeepCopies(t *testing.T) {
	svc := newProfileService(t)
	settings := models.ClaudeSettings{}
	settings.Env.AnthropicMaxTokens = intPtr(4096)
	svc.Create("src", "source", settings)

	dup, ok := svc.Duplicate("src", "copy", "copied")
	if !ok {
		t.Fatal("duplicate failed")
	}
	if dup.Name != "copy" || dup.Description != "copied" {
		t.Errorf("dup = %+v", dup)
	}
	if dup.Settings.Env.AnthropicMaxTokens == nil || *dup.Settings.Env.AnthropicMaxTokens != 4096 {
		t.Error("settings not carried over")
	}

	src, _ := svc.LoadProfile("src")
	if dup.Settings.Env.AnthropicMaxTokens == src.Settings.Env.AnthropicMaxTokens {
		t.Error("duplicate shares pointer state with source")
	}

	if _, ok := svc.Duplicate("ghost", "x", ""); ok {
		t.Error("duplicate of unknown source should fail")
	}
}
