package frontmatter

import "testing"

func TestParseBasic(t *testing.T) {
	content := `---
name: reviewer
description: Reviews pull requests
color: blue
---

You are a code reviewer.`

	fm := Parse(content)

	tests := []struct {
		key  string
		want string
	}{
		{"name", "reviewer"},
		{"description", "Reviews pull requests"},
		{"color", "blue"},
		{MainContentKey, "You are a code reviewer."},
	}
	for _, tt := range tests {
		got, ok := fm.Get(tt.key)
		if !ok {
			t.Errorf("key %q missing", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("key %q = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestParseNoDelimiters(t *testing.T) {
	fm := Parse("just a plain document\nwith no metadata")
	if fm.Len() != 0 {
		t.Errorf("expected empty mapping, got %d keys", fm.Len())
	}
}

func TestParseSingleDelimiter(t *testing.T) {
	fm := Parse("---\nname: broken")
	if fm.Len() != 0 {
		t.Errorf("expected empty mapping, got %d keys", fm.Len())
	}
}

func TestParsePreContent(t *testing.T) {
	fm := Parse("leading notes\n---\nname: x\n---\nbody")
	if got, _ := fm.Get(PreContentKey); got != "leading notes" {
		t.Errorf("precontent = %q", got)
	}
	if got, _ := fm.Get(MainContentKey); got != "body" {
		t.Errorf("maincontent = %q", got)
	}
}

func TestParseQuotedValue(t *testing.T) {
	fm := Parse("---\ndescription: \"quoted text\"\n---\n")
	if got, _ := fm.Get("description"); got != "quoted text" {
		t.Errorf("description = %q, want quote-stripped", got)
	}
}

func TestParseMultiLineValue(t *testing.T) {
	content := "---\ndescription: first line\n  second line\n  third line\nname: x\n---\n"
	fm := Parse(content)
	want := "first line\nsecond line\nthird line"
	if got, _ := fm.Get("description"); got != want {
		t.Errorf("description = %q, want %q", got, want)
	}
	if got, _ := fm.Get("name"); got != "x" {
		t.Errorf("name = %q", got)
	}
}

func TestParseIndentedColonIsContinuation(t *testing.T) {
	// An indented line containing ":" continues the previous value rather
	// than starting a new key.
	content := "---\ndescription: uses\n  example: like this\n---\n"
	fm := Parse(content)
	if fm.Has("example") {
		t.Error("indented line was treated as a new key")
	}
	want := "uses\nexample: like this"
	if got, _ := fm.Get("description"); got != want {
		t.Errorf("description = %q, want %q", got, want)
	}
}

func TestParseDuplicateKeyOverwrites(t *testing.T) {
	fm := Parse("---\nname: first\nname: second\n---\n")
	if got, _ := fm.Get("name"); got != "second" {
		t.Errorf("name = %q, want last occurrence", got)
	}
	if fm.Len() != 1 {
		t.Errorf("len = %d, want 1", fm.Len())
	}
}

func TestParseBlankLinesSkipped(t *testing.T) {
	fm := Parse("---\nname: x\n\n\ncolor: red\n---\n")
	if got, _ := fm.Get("color"); got != "red" {
		t.Errorf("color = %q", got)
	}
}

func TestKeyOrder(t *testing.T) {
	fm := New()
	fm.Set("b", "1")
	fm.Set("a", "2")
	fm.Set("c", "3")
	fm.Set("a", "updated")

	keys := fm.Keys()
	want := []string{"b", "a", "c"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if got, _ := fm.Get("a"); got != "updated" {
		t.Errorf("overwrite lost: a = %q", got)
	}
}

func TestDelete(t *testing.T) {
	fm := New()
	fm.Set("a", "1")
	fm.Set("b", "2")
	fm.Delete("a")
	if fm.Has("a") {
		t.Error("a still present after delete")
	}
	if fm.Len() != 1 {
		t.Errorf("len = %d, want 1", fm.Len())
	}
	fm.Delete("missing")
}

func TestParseEmptyBlock(t *testing.T) {
	fm := Parse("---\n---\nbody only")
	if got, _ := fm.Get(MainContentKey); got != "body only" {
		t.Errorf("maincontent = %q", got)
	}
	if fm.Len() != 1 {
		t.Errorf("len = %d, want 1 (maincontent only)", fm.Len())
	}
}
