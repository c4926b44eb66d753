package transform

import (
	"strings"

	"github.com/ethitter/gutenberg/richtext"
)

// PrefixToken extracts the prefix token a typed space may have completed.
//
// The character immediately before the caret must be exactly one literal
// space; any other character, including other whitespace, disqualifies the
// position. The token is the trimmed text from the start of the value up to
// the caret. Returns false when the position does not qualify or the token
// is empty.
func PrefixToken(v richtext.Value) (string, bool) {
	caret := v.Start
	if caret < 1 || caret > len(v.Text) {
		return "", false
	}
	if v.Text[caret-1] != ' ' {
		return "", false
	}
	token := strings.TrimSpace(string(v.Text[:caret]))
	if token == "" {
		return "", false
	}
	return token, true
}
