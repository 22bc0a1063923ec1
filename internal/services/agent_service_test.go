package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"semanticcode/internal/frontmatter"
	"semanticcode/internal/models"
)

func writeAgentFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestParseAgentFile(t *testing.T) {
	content := `---
name: reviewer
description: Reviews code
color: blue
model: opus
---

You review pull requests.`

	agent, ok := ParseAgentFile("reviewer.md", content)
	if !ok {
		t.Fatal("expected valid agent")
	}
	if agent.Name != "reviewer" {
		t.Errorf("Name = %q", agent.Name)
	}
	if agent.Description != "Reviews code" {
		t.Errorf("Description = %q", agent.Description)
	}
	if agent.Color != "blue" {
		t.Errorf("Color = %q", agent.Color)
	}
	if agent.Content != "You review pull requests." {
		t.Errorf("Content = %q", agent.Content)
	}
	if got, _ := agent.FrontMatter.Get("model"); got != "opus" {
		t.Errorf("extra key model = %q", got)
	}
}

func TestParseAgentFileMissingName(t *testing.T) {
	if _, ok := ParseAgentFile("x.md", "---\ndescription: no name here\n---\nbody"); ok {
		t.Error("expected invalid agent without name")
	}
	if _, ok := ParseAgentFile("x.md", "plain text, no metadata"); ok {
		t.Error("expected invalid agent without front matter")
	}
}

func TestParseAgentFileColorDefault(t *testing.T) {
	agent, ok := ParseAgentFile("x.md", "---\nname: x\n---\n")
	if !ok {
		t.Fatal("expected valid agent")
	}
	if agent.Color != "default" {
		t.Errorf("Color = %q, want default", agent.Color)
	}
}

func TestSerializeAgentRoundTrip(t *testing.T) {
	fm := frontmatter.New()
	fm.Set("name", "writer")
	fm.Set("tools", "Read, Write")

	agent := &models.Agent{
		Name:        "writer",
		Description: "Writes docs",
		Color:       "green",
		Content:     "You write documentation.",
		FrontMatter: fm,
	}

	out := SerializeAgent(agent)
	parsed, ok := ParseAgentFile("writer.md", out)
	if !ok {
		t.Fatalf("serialized output did not parse:\n%s", out)
	}
	if parsed.Name != agent.Name || parsed.Description != agent.Description ||
		parsed.Color != agent.Color || parsed.Content != agent.Content {
		t.Errorf("round trip mismatch: %+v", parsed)
	}
	if got, _ := parsed.FrontMatter.Get("tools"); got != "Read, Write" {
		t.Errorf("tools = %q", got)
	}
}

func TestSerializeAgentAlwaysEmitsCoreKeys(t *testing.T) {
	out := SerializeAgent(&models.Agent{Name: "bare"})
	for _, line := range []string{"name: bare\n", "description: \n", "color: \n"} {
		if !strings.Contains(out, line) {
			t.Errorf("serialized output missing %q:\n%s", line, out)
		}
	}
}

func TestSerializeAgentMultiLineDescription(t *testing.T) {
	agent := &models.Agent{
		Name:        "x",
		Description: "first line\nsecond line",
	}
	out := SerializeAgent(agent)
	parsed, ok := ParseAgentFile("x.md", out)
	if !ok {
		t.Fatal("serialized output did not parse")
	}
	if parsed.Description != agent.Description {
		t.Errorf("Description = %q, want %q", parsed.Description, agent.Description)
	}
}

func TestAgentServiceListAll(t *testing.T) {
	dir := t.TempDir()
	writeAgentFile(t, dir, "b.md", "---\nname: Bravo\n---\n")
	writeAgentFile(t, dir, "a.md", "---\nname: alpha\n---\n")
	writeAgentFile(t, dir, "invalid.md", "no front matter")
	writeAgentFile(t, dir, "notes.txt", "---\nname: ignored\n---\n")

	svc := NewAgentService(dir)
	agents := svc.ListAll()
	if len(agents) != 2 {
		t.Fatalf("got %d agents, want 2", len(agents))
	}
	if agents[0].Name != "alpha" || agents[1].Name != "Bravo" {
		t.Errorf("order = %s, %s", agents[0].Name, agents[1].Name)
	}
}

func TestAgentServiceListAllMissingDir(t *testing.T) {
	svc := NewAgentService(filepath.Join(t.TempDir(), "nope"))
	if agents := svc.ListAll(); len(agents) != 0 {
		t.Errorf("got %d agents from missing dir", len(agents))
	}
}

func TestAgentServiceSaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "agents")
	svc := NewAgentService(dir)

	agent := &models.Agent{Name: "My Agent", Content: "body"}
	if !svc.Save(agent) {
		t.Fatal("save failed")
	}
	if agent.FileName != "My Agent.md" {
		t.Errorf("FileName = %q", agent.FileName)
	}
	if !svc.Exists("My Agent.md") {
		t.Error("file not on disk")
	}

	loaded, ok := svc.Load("My Agent.md")
	if !ok {
		t.Fatal("load failed")
	}
	if loaded.Name != "My Agent" || loaded.Content != "body" {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.FilePath != filepath.Join(dir, "My Agent.md") {
		t.Errorf("FilePath = %q", loaded.FilePath)
	}
}

func TestAgentServiceSaveRejectsEmptyName(t *testing.T) {
	svc := NewAgentService(t.TempDir())
	if svc.Save(&models.Agent{Name: "   "}) {
		t.Error("expected save to reject blank name")
	}
	if svc.Save(nil) {
		t.Error("expected save to reject nil")
	}
}

func TestAgentServiceDelete(t *testing.T) {
	dir := t.TempDir()
	writeAgentFile(t, dir, "x.md", "---\nname: x\n---\n")

	svc := NewAgentService(dir)
	if !svc.Delete("x.md") {
		t.Error("delete failed")
	}
	if svc.Delete("x.md") {
		t.Error("second delete should report false")
	}
	if svc.Exists("x.md") {
		t.Error("file still present")
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"simple", "simple"},
		{"with spaces", "with spaces"},
		{`a/b\c:d*e`, "a_b_c_d_e"},
		{`q"r<s>t|u?v`, "q_r_s_t_u_v"},
		{"  trimmed  ", "trimmed"},
	}
	for _, tt := range tests {
		if got := sanitizeFileName(tt.in); got != tt.want {
			t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
