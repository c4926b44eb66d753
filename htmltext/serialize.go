package htmltext

import (
	"html"
	"sort"
	"strings"

	"github.com/ethitter/gutenberg/richtext"
)

// Serialize converts a rich-text value back into an HTML fragment,
// re-nesting format stacks into elements. Newlines become <br>. When
// multilineTag is non-empty, line-separator segments are each wrapped in an
// element of that tag.
func Serialize(v richtext.Value, multilineTag string) (string, error) {
	if err := v.Validate(); err != nil {
		return "", err
	}
	if multilineTag == "" {
		return serializeRange(v, 0, v.Len()), nil
	}

	var sb strings.Builder
	segStart := 0
	flush := func(end int) {
		sb.WriteString("<" + multilineTag + ">")
		sb.WriteString(serializeRange(v, segStart, end))
		sb.WriteString("</" + multilineTag + ">")
	}
	for i, r := range v.Text {
		if r == richtext.LineSeparator {
			flush(i)
			segStart = i + 1
		}
	}
	flush(v.Len())
	return sb.String(), nil
}

// serializeRange writes the characters of [from, to), opening and closing
// format elements where adjacent stacks diverge.
func serializeRange(v richtext.Value, from, to int) string {
	var sb strings.Builder
	var open []richtext.Format

	closeFrom := func(i int) {
		for j := len(open) - 1; j >= i; j-- {
			sb.WriteString("</" + open[j].Type + ">")
		}
		open = open[:i]
	}

	for i := from; i < to; i++ {
		stack := v.Formats[i]
		common := 0
		for common < len(open) && common < len(stack) && open[common].Equal(stack[common]) {
			common++
		}
		closeFrom(common)
		for _, f := range stack[common:] {
			sb.WriteString(openTag(f))
			open = append(open, f)
		}

		if v.Text[i] == '\n' {
			sb.WriteString("<br>")
		} else {
			sb.WriteString(html.EscapeString(string(v.Text[i])))
		}
	}
	closeFrom(0)
	return sb.String()
}

func openTag(f richtext.Format) string {
	if len(f.Attributes) == 0 {
		return "<" + f.Type + ">"
	}
	keys := make([]string, 0, len(f.Attributes))
	for k := range f.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("<" + f.Type)
	for _, k := range keys {
		sb.WriteString(" " + k + `="` + html.EscapeString(f.Attributes[k]) + `"`)
	}
	sb.WriteString(">")
	return sb.String()
}
