package transform

import (
	"testing"

	"github.com/ethitter/gutenberg/richtext"
)

func TestPrefixToken(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		caret int
		want  string
		ok    bool
	}{
		{"star and space", "* ", 2, "*", true},
		{"double hash", "## ", 3, "##", true},
		{"no trailing space", "*", 1, "", false},
		{"tab is not a space", "*\t", 2, "", false},
		{"caret at start", "* ", 0, "", false},
		{"only whitespace before caret", "  ", 2, "", false},
		{"caret mid-text", "* x", 2, "*", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := richtext.FromString(tt.text).WithSelection(tt.caret, tt.caret)
			got, ok := PrefixToken(v)
			if ok != tt.ok || got != tt.want {
				t.Errorf("PrefixToken(%q@%d) = %q, %v; want %q, %v",
					tt.text, tt.caret, got, ok, tt.want, tt.ok)
			}
		})
	}
}
