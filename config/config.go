// Package config holds the per-surface editing policy the host feeds the
// edit-decision engine, with TOML loading and optional live reload.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Policy captures the editing behavior knobs of one rich-text surface.
// The zero value is a plain single-line surface with all extras off.
type Policy struct {
	// MultilineTag, when non-empty, puts the surface in multiline mode:
	// line-separator segments represent repeated elements of this tag
	// (e.g. "li").
	MultilineTag string `toml:"multiline_tag"`

	// DisableLineBreaks turns Shift+Enter (and plain Enter without a split
	// capability) into a no-op instead of inserting a newline.
	DisableLineBreaks bool `toml:"disable_line_breaks"`

	// PlainTextPaste makes every paste insert the payload's plain text,
	// ignoring markup entirely.
	PlainTextPaste bool `toml:"plain_text_paste"`

	// PreserveWhitespace keeps whitespace runs in parsed pasted content
	// instead of collapsing them.
	PreserveWhitespace bool `toml:"preserve_whitespace"`

	// EmbedURLOnPaste escalates a paste of a bare URL into an empty value
	// to block parsing, letting the host produce an embed block.
	EmbedURLOnPaste bool `toml:"embed_url_on_paste"`
}

// Default returns the default policy.
func Default() Policy {
	return Policy{}
}

// Multiline reports whether the surface is in multiline mode.
func (p Policy) Multiline() bool {
	return p.MultilineTag != ""
}

// Parse decodes a policy from TOML, on top of defaults.
func Parse(data []byte) (Policy, error) {
	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("parsing policy: %w", err)
	}
	return p, nil
}

// Load reads a policy file. A missing file is not an error: the defaults
// are returned.
func Load(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Policy{}, fmt.Errorf("reading policy file %s: %w", path, err)
	}
	return Parse(data)
}
