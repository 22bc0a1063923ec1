// Package frontmatter parses and renders the delimited metadata block at the
// top of agent definition files. The block is bounded by two "---" markers;
// keys keep their insertion order so a document can be rewritten without
// shuffling its metadata.
package frontmatter

import "strings"

const delimiter = "---"

// Reserved keys holding the text outside the metadata block.
const (
	PreContentKey  = "_precontent"
	MainContentKey = "_maincontent"
)

// FrontMatter is an insertion-ordered string-to-string mapping.
// Setting an existing key overwrites its value but keeps its position.
type FrontMatter struct {
	keys   []string
	values map[string]string
}

// New returns an empty FrontMatter.
func New() *FrontMatter {
	return &FrontMatter{values: make(map[string]string)}
}

// Set stores value under key, preserving the key's original position when it
// already exists.
func (fm *FrontMatter) Set(key, value string) {
	if _, ok := fm.values[key]; !ok {
		fm.keys = append(fm.keys, key)
	}
	fm.values[key] = value
}

// Get returns the value for key and whether it is present.
func (fm *FrontMatter) Get(key string) (string, bool) {
	v, ok := fm.values[key]
	return v, ok
}

// GetOr returns the value for key, or fallback if absent.
func (fm *FrontMatter) GetOr(key, fallback string) string {
	if v, ok := fm.values[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether key is present.
func (fm *FrontMatter) Has(key string) bool {
	_, ok := fm.values[key]
	return ok
}

// Delete removes key if present.
func (fm *FrontMatter) Delete(key string) {
	if _, ok := fm.values[key]; !ok {
		return
	}
	delete(fm.values, key)
	for i, k := range fm.keys {
		if k == key {
			fm.keys = append(fm.keys[:i], fm.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (fm *FrontMatter) Keys() []string {
	out := make([]string, len(fm.keys))
	copy(out, fm.keys)
	return out
}

// Len returns the number of keys, including reserved ones.
func (fm *FrontMatter) Len() int {
	return len(fm.keys)
}

// Parse extracts the metadata block from a raw document.
//
// Text before the first delimiter lands under PreContentKey, text after the
// second delimiter under MainContentKey (both only when non-empty after
// trimming). Inside the block a two-state line scanner runs: an unindented
// line containing ":" starts a new key, any other non-blank line continues
// the current key's value joined by newlines. One layer of surrounding double
// quotes is stripped from a key's first value line. Duplicate keys overwrite.
//
// Documents without two delimiters yield an empty mapping, never an error.
func Parse(content string) *FrontMatter {
	fm := New()

	first := strings.Index(content, delimiter)
	if first == -1 {
		return fm
	}
	second := strings.Index(content[first+len(delimiter):], delimiter)
	if second == -1 {
		return fm
	}
	second += first + len(delimiter)

	if pre := strings.TrimSpace(content[:first]); pre != "" {
		fm.Set(PreContentKey, pre)
	}

	block := strings.TrimSpace(content[first+len(delimiter) : second])

	var currentKey string
	var currentValue []string
	flush := func() {
		if currentKey != "" {
			fm.Set(currentKey, strings.TrimSpace(strings.Join(currentValue, "\n")))
			currentValue = currentValue[:0]
		}
	}

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		indented := strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
		colon := strings.Index(trimmed, ":")
		if !indented && colon > 0 {
			flush()
			currentKey = strings.TrimSpace(trimmed[:colon])
			value := strings.TrimSpace(trimmed[colon+1:])
			if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
				value = value[1 : len(value)-1]
			}
			if value != "" {
				currentValue = append(currentValue, value)
			}
			continue
		}

		if currentKey != "" {
			currentValue = append(currentValue, trimmed)
		}
	}
	flush()

	if rest := second + len(delimiter); rest <= len(content) {
		if post := strings.TrimSpace(content[rest:]); post != "" {
			fm.Set(MainContentKey, post)
		}
	}

	return fm
}
